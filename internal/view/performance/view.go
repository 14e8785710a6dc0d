// Package performance drives the performance review screen.
package performance

import (
	"context"

	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

type Form struct {
	EmployeeID          string
	ReviewPeriod        string
	Rating              string
	Strengths           string
	AreasForImprovement string
	Goals               string
	Comments            string
}

type View struct {
	repo     performance.Repository
	sessions session.Store
	notify   view.Notifier

	list *view.List[performance.Review]

	FormOpen bool
	Form     Form
}

func New(repo performance.Repository, sessions session.Store, notify view.Notifier) *View {
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
	return Form{Rating: "3"}
}

func (v *View) Load(ctx context.Context) error {
	return v.list.Load(ctx)
}

func (v *View) Reviews() []performance.Review {
	return v.list.Items()
}

func (v *View) CanCreate() bool {
	return user.Can(view.CurrentUser(v.sessions).Role, user.ActionReviewCreate)
}

func (v *View) OpenForm() {
	v.FormOpen = true
}

func (v *View) CloseForm() {
	v.FormOpen = false
}

// Submit files a review authored by the signed-in user and re-fetches the
// table. The reviewer id is taken from the session, never from the form.
func (v *View) Submit(ctx context.Context) error {
	req, err := v.buildRequest()
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to submit review"))
		return err
	}

	err = v.list.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "Failed to submit review"))
		return err
	}

	v.notify.Success("Review submitted successfully!")
	v.FormOpen = false
	v.Form = defaultForm()
	return nil
}

func (v *View) buildRequest() (performance.CreateReviewRequest, error) {
	rating, ok := forms.ParseRating(v.Form.Rating)
	if !ok {
		return performance.CreateReviewRequest{}, forms.ValidationErrors{
			{Field: "rating", Message: "rating must be between 1 and 5 in half steps"},
		}
	}

	req := performance.CreateReviewRequest{
		EmployeeID:          v.Form.EmployeeID,
		ReviewerID:          view.CurrentUser(v.sessions).ID,
		ReviewPeriod:        v.Form.ReviewPeriod,
		Rating:              rating,
		Strengths:           v.Form.Strengths,
		AreasForImprovement: v.Form.AreasForImprovement,
		Goals:               v.Form.Goals,
		Comments:            v.Form.Comments,
	}
	if err := req.Validate(); err != nil {
		return performance.CreateReviewRequest{}, err
	}
	return req, nil
}
