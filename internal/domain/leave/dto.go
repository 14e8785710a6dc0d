package leave

import (
	"time"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
)

type CreateLeaveRequest struct {
	EmployeeID string    `json:"employee_id"`
	Type       Type      `json:"leave_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.EmployeeID) {
		errs = append(errs, forms.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !ValidType(r.Type) {
		errs = append(errs, forms.ValidationError{Field: "leave_type", Message: "leave_type must be vacation, sick or personal"})
	}
	if forms.IsEmpty(r.Reason) {
		errs = append(errs, forms.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		errs = append(errs, forms.ValidationError{Field: "dates", Message: "start_date and end_date are required"})
	} else if r.EndDate.Before(r.StartDate) {
		errs = append(errs, forms.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveLeaveRequest carries the target status plus the approver's user id,
// keyed by the record id in the URL.
type ApproveLeaveRequest struct {
	Status     Status `json:"status"`
	ApprovedBy string `json:"approved_by"`
}
