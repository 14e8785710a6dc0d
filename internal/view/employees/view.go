// Package employees drives the employee directory screen: the roster table,
// the department name lookup, and the add-employee form.
package employees

import (
	"context"

	"github.com/hrsuite/hrsuite-console/internal/domain/department"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/view"
	"golang.org/x/sync/errgroup"
)

// Form holds the add-employee inputs as entered. Fields stay strings until
// submit, when they are parsed into wire types.
type Form struct {
	UserID           string
	EmployeeNumber   string
	DepartmentID     string
	Position         string
	HireDate         string
	Salary           string
	Benefits         string
	Phone            string
	Address          string
	EmergencyContact string
}

type View struct {
	employees   employee.Repository
	departments department.Repository
	sessions    session.Store
	notify      view.Notifier

	list  *view.List[employee.Employee]
	depts []department.Department

	FormOpen bool
	Form     Form
}

func New(employees employee.Repository, departments department.Repository, sessions session.Store, notify view.Notifier) *View {
	v := &View{
		employees:   employees,
		departments: departments,
		sessions:    sessions,
		notify:      notify,
		Form:        defaultForm(),
	}
	v.list = view.NewList(v.fetchAll)
	return v
}

func defaultForm() Form {
	return Form{HireDate: forms.Today()}
}

// Load fetches the roster and the department reference data in parallel.
// Either failure fails the load; previously displayed rows are kept.
func (v *View) Load(ctx context.Context) error {
	return v.list.Load(ctx)
}

// fetchAll runs both fetches in parallel and commits nothing unless both
// succeed, so a split failure never leaves a half-updated screen.
func (v *View) fetchAll(ctx context.Context) ([]employee.Employee, error) {
	var (
		emps  []employee.Employee
		depts []department.Department
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emps, err = v.employees.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		depts, err = v.departments.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v.depts = depts
	return emps, nil
}

func (v *View) Employees() []employee.Employee {
	return v.list.Items()
}

func (v *View) Departments() []department.Department {
	return v.depts
}

// DepartmentName resolves a department id against the fetched reference list.
// Unassigned or unknown ids render as "N/A".
func (v *View) DepartmentName(id string) string {
	if id == "" {
		return "N/A"
	}
	for _, d := range v.depts {
		if d.ID == id {
			return d.Name
		}
	}
	return "N/A"
}

func (v *View) CanCreate() bool {
	return user.Can(view.CurrentUser(v.sessions).Role, user.ActionEmployeeCreate)
}

func (v *View) OpenForm() {
	v.FormOpen = true
}

func (v *View) CloseForm() {
	v.FormOpen = false
}

// Submit parses the form, creates the employee, and re-fetches the roster.
// On success the form closes and resets; on failure the entered values stay.
func (v *View) Submit(ctx context.Context) error {
	req, err := v.buildRequest()
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to add employee"))
		return err
	}

	err = v.list.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.employees.Create(ctx, req)
		return err
	})
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to add employee"))
		return err
	}

	v.notify.Success("Employee added successfully!")
	v.FormOpen = false
	v.Form = defaultForm()
	return nil
}

func (v *View) buildRequest() (employee.CreateEmployeeRequest, error) {
	var errs forms.ValidationErrors

	hireDate, err := forms.ParseDate(v.Form.HireDate)
	if err != nil {
		errs = append(errs, forms.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}
	salary, ok := forms.ParseMoney(v.Form.Salary)
	if !ok {
		errs = append(errs, forms.ValidationError{Field: "salary", Message: "salary must be a non-negative amount"})
	}
	if len(errs) > 0 {
		return employee.CreateEmployeeRequest{}, errs
	}

	req := employee.CreateEmployeeRequest{
		UserID:           v.Form.UserID,
		EmployeeNumber:   v.Form.EmployeeNumber,
		DepartmentID:     v.Form.DepartmentID,
		Position:         v.Form.Position,
		HireDate:         hireDate,
		Salary:           salary,
		Benefits:         forms.SplitCSV(v.Form.Benefits),
		Phone:            v.Form.Phone,
		Address:          v.Form.Address,
		EmergencyContact: v.Form.EmergencyContact,
	}
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeRequest{}, err
	}
	return req, nil
}
