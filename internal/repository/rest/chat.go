package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/chat"
)

type ChatRepository struct {
	client *Client
}

var _ chat.Repository = (*ChatRepository)(nil)

func NewChatRepository(client *Client) *ChatRepository {
	return &ChatRepository{client: client}
}

func (r *ChatRepository) Send(ctx context.Context, req chat.SendRequest) (chat.SendResponse, error) {
	var resp chat.SendResponse
	if err := r.client.do(ctx, http.MethodPost, "/ai-chat", req, &resp); err != nil {
		return chat.SendResponse{}, err
	}
	return resp, nil
}
