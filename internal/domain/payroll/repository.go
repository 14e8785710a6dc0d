package payroll

import "context"

type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Create(ctx context.Context, req CreateRecordRequest) (Record, error)
}
