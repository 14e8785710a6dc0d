package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/hrsuite/hrsuite-console/internal/domain/chat"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/shell"
)

func (c *console) render(ctx context.Context) {
	fmt.Fprintln(c.out)
	if c.shell.Current() == shell.RouteLogin {
		fmt.Fprintln(c.out, "== HR Suite — sign in ==")
		fmt.Fprintln(c.out, "commands: login, register, quit")
		return
	}

	c.renderHeader()
	switch c.shell.Current() {
	case shell.RouteDashboard:
		c.renderDashboard(ctx)
	case shell.RouteEmployees:
		c.renderEmployees(ctx)
	case shell.RouteLeave:
		c.renderLeave(ctx)
	case shell.RoutePerformance:
		c.renderPerformance(ctx)
	case shell.RoutePayroll:
		c.renderPayroll(ctx)
	case shell.RouteAssistant:
		c.renderAssistant()
	}
}

func (c *console) renderHeader() {
	if u, ok := c.shell.Identity(); ok {
		fmt.Fprintf(c.out, "== HR Suite — %s (%s) ==\n", u.FullName, u.Role)
	}
	for i, item := range c.shell.MenuItems() {
		marker := "  "
		if item.Route == c.shell.Current() {
			marker = "* "
		}
		fmt.Fprintf(c.out, "%s%d. %s\n", marker, i+1, item.Title)
	}
}

func (c *console) renderDashboard(ctx context.Context) {
	if err := c.dashboard.Load(ctx); err != nil {
		fmt.Fprintln(c.out, "dashboard unavailable:", err)
		return
	}
	s := c.dashboard.Stats
	fmt.Fprintf(c.out, "\nTotal employees:  %d\n", s.TotalEmployees)
	fmt.Fprintf(c.out, "Pending leaves:   %d\n", s.PendingLeaves)
	fmt.Fprintf(c.out, "Average rating:   %.1f\n", s.AvgRating)
	fmt.Fprintf(c.out, "Monthly payroll:  %s\n", s.MonthlyPayroll.StringFixed(2))
}

func (c *console) renderEmployees(ctx context.Context) {
	if err := c.employees.Load(ctx); err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
	}
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\tNUMBER\tPOSITION\tDEPARTMENT\tSTATUS\tSALARY\tHIRED")
	for i, e := range c.employees.Employees() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, e.EmployeeNumber, e.Position, c.employees.DepartmentName(e.DepartmentID),
			e.Status, e.Salary.StringFixed(2), forms.FormatDate(e.HireDate))
	}
	w.Flush()
}

func (c *console) renderLeave(ctx context.Context) {
	if err := c.leave.Load(ctx); err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
	}
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\tEMPLOYEE\tTYPE\tSTART\tEND\tSTATUS\tREASON")
	for i, l := range c.leave.Requests() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, l.EmployeeID, l.Type, forms.FormatDate(l.StartDate),
			forms.FormatDate(l.EndDate), l.Status, l.Reason)
	}
	w.Flush()
}

func (c *console) renderPerformance(ctx context.Context) {
	if err := c.performance.Load(ctx); err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
	}
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\tEMPLOYEE\tPERIOD\tRATING\tREVIEWER")
	for i, r := range c.performance.Reviews() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n", i+1, r.EmployeeID, r.ReviewPeriod, r.Rating, r.ReviewerID)
	}
	w.Flush()
}

func (c *console) renderPayroll(ctx context.Context) {
	if err := c.payroll.Load(ctx); err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
	}
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\tEMPLOYEE\tPERIOD\tGROSS\tDEDUCTIONS\tNET\tSTATUS")
	for i, r := range c.payroll.Records() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, r.EmployeeID, r.PayPeriod, r.GrossSalary.StringFixed(2),
			r.Deductions.StringFixed(2), r.NetSalary.StringFixed(2), r.Status)
	}
	w.Flush()
}

func (c *console) renderAssistant() {
	fmt.Fprintln(c.out)
	for _, m := range c.assistant.Messages() {
		speaker := "you"
		if m.Role == chat.RoleAssistant {
			speaker = "assistant"
		}
		fmt.Fprintf(c.out, "[%s] %s\n", speaker, m.Content)
	}
	fmt.Fprintln(c.out, "\ntype a message, or 1-6 to navigate")
}
