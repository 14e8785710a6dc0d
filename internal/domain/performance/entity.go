package performance

import "time"

type Review struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employee_id"`
	ReviewerID          string    `json:"reviewer_id"`
	ReviewPeriod        string    `json:"review_period"`
	Rating              float64   `json:"rating"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areas_for_improvement"`
	Goals               string    `json:"goals"`
	Comments            string    `json:"comments,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
