package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/payroll"
)

type PayrollRepository struct {
	client *Client
}

var _ payroll.Repository = (*PayrollRepository)(nil)

func NewPayrollRepository(client *Client) *PayrollRepository {
	return &PayrollRepository{client: client}
}

func (r *PayrollRepository) List(ctx context.Context) ([]payroll.Record, error) {
	var records []payroll.Record
	if err := r.client.do(ctx, http.MethodGet, "/payroll", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PayrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	var records []payroll.Record
	if err := r.client.do(ctx, http.MethodGet, "/payroll/employee/"+employeeID, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PayrollRepository) Create(ctx context.Context, req payroll.CreateRecordRequest) (payroll.Record, error) {
	var record payroll.Record
	if err := r.client.do(ctx, http.MethodPost, "/payroll", req, &record); err != nil {
		return payroll.Record{}, err
	}
	return record, nil
}
