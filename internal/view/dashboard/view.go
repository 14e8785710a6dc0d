// Package dashboard aggregates the four domain lists into the landing-screen
// stat cards.
package dashboard

import (
	"context"
	"math"

	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/domain/payroll"
	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Stats are the four cards. AvgRating is 0 when no reviews exist, otherwise
// the mean rounded to one decimal place. MonthlyPayroll sums net salaries.
type Stats struct {
	TotalEmployees int
	PendingLeaves  int
	AvgRating      float64
	MonthlyPayroll decimal.Decimal
}

type View struct {
	employees employee.Repository
	leaves    leave.Repository
	reviews   performance.Repository
	payrolls  payroll.Repository

	Stats Stats
}

func New(employees employee.Repository, leaves leave.Repository, reviews performance.Repository, payrolls payroll.Repository) *View {
	return &View{
		employees: employees,
		leaves:    leaves,
		reviews:   reviews,
		payrolls:  payrolls,
	}
}

// Load fetches all four lists in parallel and recomputes the cards. Any
// fetch failure fails the load and leaves the previous stats in place.
func (v *View) Load(ctx context.Context) error {
	var (
		employees []employee.Employee
		requests  []leave.LeaveRequest
		reviews   []performance.Review
		records   []payroll.Record
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = v.employees.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = v.leaves.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = v.reviews.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = v.payrolls.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	v.Stats = compute(employees, requests, reviews, records)
	return nil
}

func compute(employees []employee.Employee, requests []leave.LeaveRequest, reviews []performance.Review, records []payroll.Record) Stats {
	stats := Stats{TotalEmployees: len(employees)}

	for _, r := range requests {
		if r.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}

	if len(reviews) > 0 {
		var sum float64
		for _, r := range reviews {
			sum += r.Rating
		}
		stats.AvgRating = math.Round(sum/float64(len(reviews))*10) / 10
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.NetSalary)
	}
	stats.MonthlyPayroll = total

	return stats
}
