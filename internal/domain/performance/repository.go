package performance

import "context"

type Repository interface {
	List(ctx context.Context) ([]Review, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	Create(ctx context.Context, req CreateReviewRequest) (Review, error)
}
