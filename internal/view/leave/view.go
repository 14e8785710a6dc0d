// Package leave drives the leave management screen: the request table, the
// request form, and the approve/reject controls shown to approvers.
package leave

import (
	"context"
	"fmt"

	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

type Form struct {
	EmployeeID string
	Type       string
	StartDate  string
	EndDate    string
	Reason     string
}

type View struct {
	repo     leave.Repository
	sessions session.Store
	notify   view.Notifier

	list *view.List[leave.LeaveRequest]

	FormOpen bool
	Form     Form
}

func New(repo leave.Repository, sessions session.Store, notify view.Notifier) *View {
	v := &View{
		repo:     repo,
		sessions: sessions,
		notify:   notify,
		Form:     defaultForm(),
	}
	v.list = view.NewList(repo.List)
	return v
}

func defaultForm() Form {
	today := forms.Today()
	return Form{
		Type:      string(leave.TypeVacation),
		StartDate: today,
		EndDate:   today,
	}
}

func (v *View) Load(ctx context.Context) error {
	return v.list.Load(ctx)
}

func (v *View) Requests() []leave.LeaveRequest {
	return v.list.Items()
}

func (v *View) CanCreate() bool {
	return user.Can(view.CurrentUser(v.sessions).Role, user.ActionLeaveCreate)
}

func (v *View) CanApprove() bool {
	return user.Can(view.CurrentUser(v.sessions).Role, user.ActionLeaveApprove)
}

func (v *View) OpenForm() {
	v.FormOpen = true
}

func (v *View) CloseForm() {
	v.FormOpen = false
}

// Submit files a leave request and re-fetches the table. The employee id is
// a form field; left blank, it defaults to the signed-in user.
func (v *View) Submit(ctx context.Context) error {
	req, err := v.buildRequest()
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to submit leave request"))
		return err
	}

	err = v.list.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to submit leave request"))
		return err
	}

	v.notify.Success("Leave request submitted!")
	v.FormOpen = false
	v.Form = defaultForm()
	return nil
}

// Decide approves or rejects a pending request as the signed-in user and
// re-fetches the table.
func (v *View) Decide(ctx context.Context, id string, status leave.Status) error {
	req := leave.ApproveLeaveRequest{
		Status:     status,
		ApprovedBy: view.CurrentUser(v.sessions).ID,
	}

	err := v.list.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.Approve(ctx, id, req)
		return err
	})
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to update leave request"))
		return err
	}

	v.notify.Success(fmt.Sprintf("Leave request %s!", status))
	return nil
}

func (v *View) buildRequest() (leave.CreateLeaveRequest, error) {
	var errs forms.ValidationErrors

	start, err := forms.ParseDate(v.Form.StartDate)
	if err != nil {
		errs = append(errs, forms.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, err := forms.ParseDate(v.Form.EndDate)
	if err != nil {
		errs = append(errs, forms.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return leave.CreateLeaveRequest{}, errs
	}

	employeeID := v.Form.EmployeeID
	if forms.IsEmpty(employeeID) {
		employeeID = view.CurrentUser(v.sessions).ID
	}

	req := leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.Type(v.Form.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     v.Form.Reason,
	}
	if err := req.Validate(); err != nil {
		return leave.CreateLeaveRequest{}, err
	}
	return req, nil
}
