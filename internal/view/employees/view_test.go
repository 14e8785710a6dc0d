package employees

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hrsuite/hrsuite-console/internal/domain/department"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/sessionstore"
	"github.com/hrsuite/hrsuite-console/internal/repository/rest"
	"github.com/hrsuite/hrsuite-console/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees   []employee.Employee
	listErr     error
	createErr   error
	listCalls   int
	createCalls int
	lastCreate  employee.CreateEmployeeRequest
}

func (f *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	f.listCalls++
	return f.employees, f.listErr
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	f.createCalls++
	f.lastCreate = req
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	created := employee.Employee{ID: "e-new", Position: req.Position, Salary: req.Salary}
	f.employees = append(f.employees, created)
	return created, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{ID: id, Position: req.Position}, nil
}

type fakeDepartmentRepo struct {
	departments []department.Department
	err         error
}

func (f *fakeDepartmentRepo) List(context.Context) ([]department.Department, error) {
	return f.departments, f.err
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func sessionWithRole(t *testing.T, role user.Role) session.Store {
	t.Helper()
	store := sessionstore.NewMemoryStore()
	require.NoError(t, store.Set(session.Session{
		Token: "tok",
		User:  user.User{ID: "u-1", Role: role},
	}))
	return store
}

func newView(t *testing.T, emps *fakeEmployeeRepo, depts *fakeDepartmentRepo, role user.Role) (*View, *recordingNotifier) {
	t.Helper()
	notify := &recordingNotifier{}
	return New(emps, depts, sessionWithRole(t, role), notify), notify
}

func TestView_LoadFetchesRosterAndDepartments(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{{ID: "e-1", Position: "Engineer"}}}
	depts := &fakeDepartmentRepo{departments: []department.Department{{ID: "d-1", Name: "Engineering"}}}
	v, _ := newView(t, emps, depts, user.RoleEmployee)

	require.NoError(t, v.Load(context.Background()))

	require.Len(t, v.Employees(), 1)
	require.Len(t, v.Departments(), 1)
	assert.Equal(t, "Engineering", v.DepartmentName("d-1"))
}

func TestView_LoadFailureKeepsPreviousRoster(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{{ID: "e-1"}}}
	v, _ := newView(t, emps, &fakeDepartmentRepo{}, user.RoleEmployee)
	require.NoError(t, v.Load(context.Background()))

	emps.listErr = errors.New("backend down")
	require.Error(t, v.Load(context.Background()))

	assert.Len(t, v.Employees(), 1)
}

func TestView_SplitLoadFailureDiscardsPartialResults(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{{ID: "e-1"}}}
	depts := &fakeDepartmentRepo{departments: []department.Department{{ID: "d-1", Name: "Engineering"}}}
	v, _ := newView(t, emps, depts, user.RoleEmployee)
	require.NoError(t, v.Load(context.Background()))

	// The roster fetch succeeds with a new row while departments fail: the
	// whole load fails and the successful half is discarded.
	emps.employees = append(emps.employees, employee.Employee{ID: "e-2"})
	depts.err = errors.New("backend down")

	require.Error(t, v.Load(context.Background()))

	assert.Len(t, v.Employees(), 1)
	assert.Equal(t, "Engineering", v.DepartmentName("d-1"))
}

func TestView_DepartmentNameFallsBackToNA(t *testing.T) {
	v, _ := newView(t, &fakeEmployeeRepo{}, &fakeDepartmentRepo{}, user.RoleEmployee)

	assert.Equal(t, "N/A", v.DepartmentName(""))
	assert.Equal(t, "N/A", v.DepartmentName("d-unknown"))
}

func TestView_SubmitCreatesAndRefetches(t *testing.T) {
	emps := &fakeEmployeeRepo{}
	v, notify := newView(t, emps, &fakeDepartmentRepo{}, user.RoleHRAdmin)
	v.OpenForm()
	v.Form = Form{
		UserID:         "u-9",
		EmployeeNumber: "EMP-009",
		Position:       "Designer",
		HireDate:       "2026-01-15",
		Salary:         "72000.50",
		Benefits:       "health, dental",
	}

	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, 1, emps.createCalls)
	assert.Equal(t, []string{"health", "dental"}, emps.lastCreate.Benefits)
	assert.Equal(t, "72000.5", emps.lastCreate.Salary.String())
	assert.Equal(t, 1, emps.listCalls) // refetch after the successful create
	assert.Equal(t, []string{"Employee added successfully!"}, notify.successes)
	assert.False(t, v.FormOpen)
	assert.Empty(t, v.Form.Position)
	assert.NotEmpty(t, v.Form.HireDate)
}

func TestView_SubmitBackendFailureKeepsForm(t *testing.T) {
	emps := &fakeEmployeeRepo{createErr: &rest.APIError{
		StatusCode: http.StatusConflict,
		Message:    "Employee number already exists",
	}}
	v, notify := newView(t, emps, &fakeDepartmentRepo{}, user.RoleHRAdmin)
	v.OpenForm()
	v.Form = Form{
		UserID:         "u-9",
		EmployeeNumber: "EMP-009",
		Position:       "Designer",
		HireDate:       "2026-01-15",
		Salary:         "72000",
	}

	require.Error(t, v.Submit(context.Background()))

	assert.Equal(t, []string{"Employee number already exists"}, notify.errors)
	assert.True(t, v.FormOpen)
	assert.Equal(t, "Designer", v.Form.Position)
	assert.Zero(t, emps.listCalls) // no refetch after a failed create
}

func TestView_SubmitRejectsUnparseableFields(t *testing.T) {
	emps := &fakeEmployeeRepo{}
	v, notify := newView(t, emps, &fakeDepartmentRepo{}, user.RoleHRAdmin)
	v.Form = Form{
		UserID:         "u-9",
		EmployeeNumber: "EMP-009",
		Position:       "Designer",
		HireDate:       "January 15th",
		Salary:         "-100",
	}

	require.Error(t, v.Submit(context.Background()))

	assert.Zero(t, emps.createCalls)
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "hire_date")
	assert.Contains(t, notify.errors[0], "salary")
}

func TestView_EveryRoleCanCreate(t *testing.T) {
	for _, role := range []user.Role{user.RoleEmployee, user.RoleManager, user.RoleHRAdmin} {
		v, _ := newView(t, &fakeEmployeeRepo{}, &fakeDepartmentRepo{}, role)
		assert.True(t, v.CanCreate(), "role %s", role)
	}
}

func TestView_LoggedOutCannotCreate(t *testing.T) {
	v := New(&fakeEmployeeRepo{}, &fakeDepartmentRepo{}, sessionstore.NewMemoryStore(), view.NopNotifier{})
	assert.False(t, v.CanCreate())
}
