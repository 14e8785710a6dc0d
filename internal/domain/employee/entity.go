package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string          `json:"id"`
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
	Status           Status          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
