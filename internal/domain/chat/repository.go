package chat

import "context"

type Repository interface {
	Send(ctx context.Context, req SendRequest) (SendResponse, error)
}
