package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/department"
)

type DepartmentRepository struct {
	client *Client
}

var _ department.Repository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(client *Client) *DepartmentRepository {
	return &DepartmentRepository{client: client}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]department.Department, error) {
	var departments []department.Department
	if err := r.client.do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}
