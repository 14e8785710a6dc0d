package leave

import "context"

type Repository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)
	Approve(ctx context.Context, id string, req ApproveLeaveRequest) (LeaveRequest, error)
}
