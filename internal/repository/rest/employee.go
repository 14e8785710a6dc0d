package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
)

type EmployeeRepository struct {
	client *Client
}

var _ employee.Repository = (*EmployeeRepository)(nil)

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := r.client.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var emp employee.Employee
	if err := r.client.do(ctx, http.MethodGet, "/employees/"+id, nil, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var emp employee.Employee
	if err := r.client.do(ctx, http.MethodPost, "/employees", req, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var emp employee.Employee
	if err := r.client.do(ctx, http.MethodPut, "/employees/"+id, req, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
