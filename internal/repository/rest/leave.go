package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
)

type LeaveRepository struct {
	client *Client
}

var _ leave.Repository = (*LeaveRepository)(nil)

func NewLeaveRepository(client *Client) *LeaveRepository {
	return &LeaveRepository{client: client}
}

func (r *LeaveRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	if err := r.client.do(ctx, http.MethodGet, "/leave", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *LeaveRepository) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	var created leave.LeaveRequest
	if err := r.client.do(ctx, http.MethodPost, "/leave", req, &created); err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

func (r *LeaveRepository) Approve(ctx context.Context, id string, req leave.ApproveLeaveRequest) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest
	if err := r.client.do(ctx, http.MethodPut, "/leave/"+id+"/approve", req, &updated); err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}
