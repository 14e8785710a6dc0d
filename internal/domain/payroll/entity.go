package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

type Record struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PayPeriod   string          `json:"pay_period"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
