package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
)

type PerformanceRepository struct {
	client *Client
}

var _ performance.Repository = (*PerformanceRepository)(nil)

func NewPerformanceRepository(client *Client) *PerformanceRepository {
	return &PerformanceRepository{client: client}
}

func (r *PerformanceRepository) List(ctx context.Context) ([]performance.Review, error) {
	var reviews []performance.Review
	if err := r.client.do(ctx, http.MethodGet, "/performance", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PerformanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	var reviews []performance.Review
	if err := r.client.do(ctx, http.MethodGet, "/performance/employee/"+employeeID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PerformanceRepository) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.Review, error) {
	var review performance.Review
	if err := r.client.do(ctx, http.MethodPost, "/performance", req, &review); err != nil {
		return performance.Review{}, err
	}
	return review, nil
}
