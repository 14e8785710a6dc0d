package payroll

import (
	"time"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest carries a client-computed net salary. The value is
// advisory: the backend recomputes and owns the canonical figure.
type CreateRecordRequest struct {
	EmployeeID  string          `json:"employee_id"`
	PayPeriod   string          `json:"pay_period"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	PaymentDate time.Time       `json:"payment_date"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.EmployeeID) {
		errs = append(errs, forms.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if forms.IsEmpty(r.PayPeriod) {
		errs = append(errs, forms.ValidationError{Field: "pay_period", Message: "pay_period is required"})
	}
	if r.GrossSalary.IsNegative() {
		errs = append(errs, forms.ValidationError{Field: "gross_salary", Message: "gross_salary must not be negative"})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, forms.ValidationError{Field: "deductions", Message: "deductions must not be negative"})
	}
	if r.PaymentDate.IsZero() {
		errs = append(errs, forms.ValidationError{Field: "payment_date", Message: "payment_date is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Net returns gross minus deductions at two decimal places.
func Net(gross, deductions decimal.Decimal) decimal.Decimal {
	return gross.Sub(deductions).Round(2)
}
