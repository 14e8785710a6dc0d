package employee

import (
	"time"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	UserID           string          `json:"user_id"`
	EmployeeNumber   string          `json:"employee_number"`
	DepartmentID     string          `json:"department_id,omitempty"`
	Position         string          `json:"position"`
	HireDate         time.Time       `json:"hire_date"`
	Salary           decimal.Decimal `json:"salary"`
	Benefits         []string        `json:"benefits"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	EmergencyContact string          `json:"emergency_contact,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.UserID) {
		errs = append(errs, forms.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if forms.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, forms.ValidationError{Field: "employee_number", Message: "employee_number is required"})
	}
	if forms.IsEmpty(r.Position) {
		errs = append(errs, forms.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.HireDate.IsZero() {
		errs = append(errs, forms.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, forms.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
