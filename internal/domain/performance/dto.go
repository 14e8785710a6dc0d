package performance

import (
	"math"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
)

type CreateReviewRequest struct {
	EmployeeID          string  `json:"employee_id"`
	ReviewerID          string  `json:"reviewer_id"`
	ReviewPeriod        string  `json:"review_period"`
	Rating              float64 `json:"rating"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	Goals               string  `json:"goals"`
	Comments            string  `json:"comments,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.EmployeeID) {
		errs = append(errs, forms.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if forms.IsEmpty(r.ReviewerID) {
		errs = append(errs, forms.ValidationError{Field: "reviewer_id", Message: "reviewer_id is required"})
	}
	if forms.IsEmpty(r.ReviewPeriod) {
		errs = append(errs, forms.ValidationError{Field: "review_period", Message: "review_period is required"})
	}
	if r.Rating < 1 || r.Rating > 5 || math.Mod(r.Rating*2, 1) != 0 {
		errs = append(errs, forms.ValidationError{Field: "rating", Message: "rating must be between 1 and 5 in half steps"})
	}
	if forms.IsEmpty(r.Strengths) {
		errs = append(errs, forms.ValidationError{Field: "strengths", Message: "strengths is required"})
	}
	if forms.IsEmpty(r.AreasForImprovement) {
		errs = append(errs, forms.ValidationError{Field: "areas_for_improvement", Message: "areas_for_improvement is required"})
	}
	if forms.IsEmpty(r.Goals) {
		errs = append(errs, forms.ValidationError{Field: "goals", Message: "goals is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
