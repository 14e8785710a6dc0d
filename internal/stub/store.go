package stub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/department"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/domain/payroll"
	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
)

// Account pairs a profile with its bcrypt password hash.
type Account struct {
	User         user.User
	PasswordHash []byte
}

// Store is the stub's in-memory database. All collections live behind one
// RWMutex; list reads return copies so callers never alias internal slices.
type Store struct {
	mu          sync.RWMutex
	accounts    map[string]Account // keyed by email
	employees   []employee.Employee
	departments []department.Department
	leaves      []leave.LeaveRequest
	reviews     []performance.Review
	payrolls    []payroll.Record
}

func NewStore() *Store {
	s := &Store{accounts: make(map[string]Account)}
	for _, seed := range []struct{ name, description string }{
		{"Engineering", "Product development and infrastructure"},
		{"Human Resources", "People operations"},
		{"Sales", "Revenue and customer accounts"},
	} {
		s.departments = append(s.departments, department.Department{
			ID:          uuid.NewString(),
			Name:        seed.name,
			Description: seed.description,
		})
	}
	return s
}

// CreateAccount registers a new user. The email must be unused.
func (s *Store) CreateAccount(email string, hash []byte, fullName string, role user.Role) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return user.User{}, auth.ErrEmailTaken
	}

	u := user.User{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: fullName,
		Role:     role,
	}
	s.accounts[email] = Account{User: u, PasswordHash: hash}
	return u, nil
}

func (s *Store) AccountByEmail(email string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	return account, ok
}

func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) EmployeeByID(id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *Store) AddEmployee(req employee.CreateEmployeeRequest) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := employee.Employee{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		EmployeeNumber:   req.EmployeeNumber,
		DepartmentID:     req.DepartmentID,
		Position:         req.Position,
		HireDate:         req.HireDate,
		Salary:           req.Salary,
		Benefits:         req.Benefits,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Status:           employee.StatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	s.employees = append(s.employees, e)
	return e
}

func (s *Store) UpdateEmployee(id string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.employees {
		if e.ID != id {
			continue
		}
		e.UserID = req.UserID
		e.EmployeeNumber = req.EmployeeNumber
		e.DepartmentID = req.DepartmentID
		e.Position = req.Position
		e.HireDate = req.HireDate
		e.Salary = req.Salary
		e.Benefits = req.Benefits
		e.Phone = req.Phone
		e.Address = req.Address
		e.EmergencyContact = req.EmergencyContact
		s.employees[i] = e
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *Store) Departments() []department.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]department.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func (s *Store) AddDepartment(name, description string) department.Department {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := department.Department{ID: uuid.NewString(), Name: name, Description: description}
	s.departments = append(s.departments, d)
	return d
}

func (s *Store) LeaveRequests() []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]leave.LeaveRequest, len(s.leaves))
	copy(out, s.leaves)
	return out
}

func (s *Store) AddLeaveRequest(req leave.CreateLeaveRequest) leave.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	s.leaves = append(s.leaves, l)
	return l
}

// DecideLeaveRequest moves a pending request to approved or rejected. A
// request that already left pending cannot be decided again.
func (s *Store) DecideLeaveRequest(id string, status leave.Status, approvedBy string) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.leaves {
		if l.ID != id {
			continue
		}
		if l.Status != leave.StatusPending {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		l.Status = status
		l.ApprovedBy = approvedBy
		s.leaves[i] = l
		return l, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *Store) Reviews() []performance.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]performance.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Store) ReviewsByEmployee(employeeID string) []performance.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []performance.Review{}
	for _, r := range s.reviews {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AddReview(req performance.CreateReviewRequest) performance.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := performance.Review{
		ID:                  uuid.NewString(),
		EmployeeID:          req.EmployeeID,
		ReviewerID:          req.ReviewerID,
		ReviewPeriod:        req.ReviewPeriod,
		Rating:              req.Rating,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Goals:               req.Goals,
		Comments:            req.Comments,
		CreatedAt:           time.Now().UTC(),
	}
	s.reviews = append(s.reviews, r)
	return r
}

func (s *Store) PayrollRecords() []payroll.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]payroll.Record, len(s.payrolls))
	copy(out, s.payrolls)
	return out
}

func (s *Store) PayrollByEmployee(employeeID string) []payroll.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []payroll.Record{}
	for _, r := range s.payrolls {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// AddPayrollRecord stores a record with the net salary recomputed from gross
// and deductions. The client-submitted net is advisory only.
func (s *Store) AddPayrollRecord(req payroll.CreateRecordRequest) payroll.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := payroll.Record{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		PayPeriod:   req.PayPeriod,
		GrossSalary: req.GrossSalary,
		Deductions:  req.Deductions,
		NetSalary:   payroll.Net(req.GrossSalary, req.Deductions),
		PaymentDate: req.PaymentDate,
		Status:      payroll.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.payrolls = append(s.payrolls, r)
	return r
}
