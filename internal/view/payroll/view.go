// Package payroll drives the payroll screen: the records table and the
// HR-admin-only creation form with a live net salary preview.
package payroll

import (
	"context"

	"github.com/hrsuite/hrsuite-console/internal/domain/payroll"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

type Form struct {
	EmployeeID  string
	PayPeriod   string
	GrossSalary string
	Deductions  string
	NetSalary   string // derived, read-only
	PaymentDate string
}

type View struct {
	repo     payroll.Repository
	sessions session.Store
	notify   view.Notifier

	list *view.List[payroll.Record]

	FormOpen bool
	Form     Form
}

func New(repo payroll.Repository, sessions session.Store, notify view.Notifier) *View {
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
	return Form{Deductions: "0", PaymentDate: forms.Today()}
}

func (v *View) Load(ctx context.Context) error {
	return v.list.Load(ctx)
}

func (v *View) Records() []payroll.Record {
	return v.list.Items()
}

func (v *View) CanCreate() bool {
	return user.Can(view.CurrentUser(v.sessions).Role, user.ActionPayrollCreate)
}

func (v *View) OpenForm() {
	v.FormOpen = true
}

func (v *View) CloseForm() {
	v.FormOpen = false
}

// SetGross updates the gross salary input and recomputes the net preview.
func (v *View) SetGross(s string) {
	v.Form.GrossSalary = s
	v.recomputeNet()
}

// SetDeductions updates the deductions input and recomputes the net preview.
func (v *View) SetDeductions(s string) {
	v.Form.Deductions = s
	v.recomputeNet()
}

func (v *View) recomputeNet() {
	gross, okGross := forms.ParseMoney(v.Form.GrossSalary)
	deductions, okDeductions := forms.ParseMoney(v.Form.Deductions)
	if !okGross || !okDeductions {
		v.Form.NetSalary = ""
		return
	}
	v.Form.NetSalary = payroll.Net(gross, deductions).StringFixed(2)
}

// Submit creates the record and re-fetches the table. The submitted net
// salary is the preview value; the backend recomputes the canonical figure.
func (v *View) Submit(ctx context.Context) error {
	req, err := v.buildRequest()
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to create payroll record"))
		return err
	}

	err = v.list.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to create payroll record"))
		return err
	}

	v.notify.Success("Payroll record created!")
	v.FormOpen = false
	v.Form = defaultForm()
	return nil
}

func (v *View) buildRequest() (payroll.CreateRecordRequest, error) {
	var errs forms.ValidationErrors

	gross, ok := forms.ParseMoney(v.Form.GrossSalary)
	if !ok {
		errs = append(errs, forms.ValidationError{Field: "gross_salary", Message: "gross_salary must be a non-negative amount"})
	}
	deductions, ok := forms.ParseMoney(v.Form.Deductions)
	if !ok {
		errs = append(errs, forms.ValidationError{Field: "deductions", Message: "deductions must be a non-negative amount"})
	}
	paymentDate, err := forms.ParseDate(v.Form.PaymentDate)
	if err != nil {
		errs = append(errs, forms.ValidationError{Field: "payment_date", Message: "payment_date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return payroll.CreateRecordRequest{}, errs
	}

	req := payroll.CreateRecordRequest{
		EmployeeID:  v.Form.EmployeeID,
		PayPeriod:   v.Form.PayPeriod,
		GrossSalary: gross,
		Deductions:  deductions,
		NetSalary:   payroll.Net(gross, deductions),
		PaymentDate: paymentDate,
	}
	if err := req.Validate(); err != nil {
		return payroll.CreateRecordRequest{}, err
	}
	return req, nil
}
