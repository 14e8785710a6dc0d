package department

import "context"

type Repository interface {
	List(ctx context.Context) ([]Department, error)
}
