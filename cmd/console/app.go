package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/shell"
	"github.com/hrsuite/hrsuite-console/internal/view/assistant"
	"github.com/hrsuite/hrsuite-console/internal/view/dashboard"
	"github.com/hrsuite/hrsuite-console/internal/view/employees"
	leaveview "github.com/hrsuite/hrsuite-console/internal/view/leave"
	"github.com/hrsuite/hrsuite-console/internal/view/login"
	payrollview "github.com/hrsuite/hrsuite-console/internal/view/payroll"
	performanceview "github.com/hrsuite/hrsuite-console/internal/view/performance"
)

type console struct {
	in  io.Reader
	out io.Writer

	shell       *shell.Shell
	login       *login.View
	employees   *employees.View
	leave       *leaveview.View
	performance *performanceview.View
	payroll     *payrollview.View
	dashboard   *dashboard.View
	assistant   *assistant.View

	scanner *bufio.Scanner
}

func (c *console) run() {
	c.scanner = bufio.NewScanner(c.in)
	ctx := context.Background()

	for {
		c.render(ctx)
		line, ok := c.readLine("> ")
		if !ok {
			return
		}
		if !c.dispatch(ctx, line) {
			return
		}
	}
}

// dispatch handles one command. Returns false when the user quits.
func (c *console) dispatch(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "", "r":
		return true
	case "q", "quit", "exit":
		return false
	case "logout":
		if err := c.shell.Logout(); err != nil {
			fmt.Fprintln(c.out, "logout failed:", err)
		}
		return true
	}

	if route, ok := menuRoute(cmd); ok {
		c.shell.Navigate(route)
		return true
	}

	switch c.shell.Current() {
	case shell.RouteLogin:
		c.dispatchLogin(ctx, cmd)
	case shell.RouteEmployees:
		c.dispatchEmployees(ctx, cmd)
	case shell.RouteLeave:
		c.dispatchLeave(ctx, cmd, rest)
	case shell.RoutePerformance:
		c.dispatchPerformance(ctx, cmd)
	case shell.RoutePayroll:
		c.dispatchPayroll(ctx, cmd)
	case shell.RouteAssistant:
		_ = c.assistant.Send(ctx, line)
	default:
		fmt.Fprintln(c.out, "unknown command:", cmd)
	}
	return true
}

// menuRoute maps a typed menu number (1-6) to its route.
func menuRoute(cmd string) (shell.Route, bool) {
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return "", false
	}
	menu := []shell.Route{
		shell.RouteDashboard,
		shell.RouteEmployees,
		shell.RouteLeave,
		shell.RoutePerformance,
		shell.RoutePayroll,
		shell.RouteAssistant,
	}
	if n < 1 || n > len(menu) {
		return "", false
	}
	return menu[n-1], true
}

func (c *console) dispatchLogin(ctx context.Context, cmd string) {
	switch cmd {
	case "login":
		c.login.Registering = false
		c.login.Form.Email = c.ask("Email")
		c.login.Form.Password = c.ask("Password")
		if c.login.Submit(ctx) == nil {
			c.shell.Navigate(shell.RouteDashboard)
		}
	case "register":
		c.login.Registering = true
		c.login.Form.Email = c.ask("Email")
		c.login.Form.Password = c.ask("Password")
		c.login.Form.FullName = c.ask("Full name")
		c.login.Form.Role = c.askDefault("Role (employee/manager/hr_admin)", c.login.Form.Role)
		if c.login.Submit(ctx) == nil {
			c.shell.Navigate(shell.RouteDashboard)
		}
	default:
		fmt.Fprintln(c.out, "commands: login, register, quit")
	}
}

func (c *console) dispatchEmployees(ctx context.Context, cmd string) {
	switch cmd {
	case "add":
		if !c.employees.CanCreate() {
			fmt.Fprintln(c.out, "not available for your role")
			return
		}
		c.employees.OpenForm()
		f := &c.employees.Form
		f.UserID = c.ask("User ID")
		f.EmployeeNumber = c.ask("Employee number")
		f.DepartmentID = c.ask("Department ID (blank for none)")
		f.Position = c.ask("Position")
		f.HireDate = c.askDefault("Hire date (YYYY-MM-DD)", f.HireDate)
		f.Salary = c.ask("Salary")
		f.Benefits = c.ask("Benefits (comma separated)")
		f.Phone = c.ask("Phone (optional)")
		_ = c.employees.Submit(ctx)
	default:
		fmt.Fprintln(c.out, "commands: add, 1-6, logout, quit")
	}
}

func (c *console) dispatchLeave(ctx context.Context, cmd, rest string) {
	decide := func(status leave.Status) {
		if !c.leave.CanApprove() {
			fmt.Fprintln(c.out, "not available for your role")
			return
		}
		n, err := strconv.Atoi(rest)
		requests := c.leave.Requests()
		if err != nil || n < 1 || n > len(requests) {
			fmt.Fprintln(c.out, "usage:", cmd, "<row number>")
			return
		}
		_ = c.leave.Decide(ctx, requests[n-1].ID, status)
	}

	switch cmd {
	case "add":
		c.leave.OpenForm()
		f := &c.leave.Form
		if u, ok := c.shell.Identity(); ok {
			f.EmployeeID = c.askDefault("Employee ID", u.ID)
		} else {
			f.EmployeeID = c.ask("Employee ID")
		}
		f.Type = c.askDefault("Type (vacation/sick/personal)", f.Type)
		f.StartDate = c.askDefault("Start date (YYYY-MM-DD)", f.StartDate)
		f.EndDate = c.askDefault("End date (YYYY-MM-DD)", f.EndDate)
		f.Reason = c.ask("Reason")
		_ = c.leave.Submit(ctx)
	case "approve":
		decide(leave.StatusApproved)
	case "reject":
		decide(leave.StatusRejected)
	default:
		fmt.Fprintln(c.out, "commands: add, approve <n>, reject <n>, 1-6, logout, quit")
	}
}

func (c *console) dispatchPerformance(ctx context.Context, cmd string) {
	switch cmd {
	case "add":
		if !c.performance.CanCreate() {
			fmt.Fprintln(c.out, "not available for your role")
			return
		}
		c.performance.OpenForm()
		f := &c.performance.Form
		f.EmployeeID = c.ask("Employee ID")
		f.ReviewPeriod = c.ask("Review period (e.g. 2026-H1)")
		f.Rating = c.askDefault("Rating (1-5, half steps)", f.Rating)
		f.Strengths = c.ask("Strengths")
		f.AreasForImprovement = c.ask("Areas for improvement")
		f.Goals = c.ask("Goals")
		f.Comments = c.ask("Comments (optional)")
		_ = c.performance.Submit(ctx)
	default:
		fmt.Fprintln(c.out, "commands: add, 1-6, logout, quit")
	}
}

func (c *console) dispatchPayroll(ctx context.Context, cmd string) {
	switch cmd {
	case "add":
		if !c.payroll.CanCreate() {
			fmt.Fprintln(c.out, "not available for your role")
			return
		}
		c.payroll.OpenForm()
		f := &c.payroll.Form
		f.EmployeeID = c.ask("Employee ID")
		f.PayPeriod = c.ask("Pay period (e.g. 2026-08)")
		c.payroll.SetGross(c.ask("Gross salary"))
		c.payroll.SetDeductions(c.askDefault("Deductions", f.Deductions))
		fmt.Fprintln(c.out, "Net salary:", f.NetSalary)
		f.PaymentDate = c.askDefault("Payment date (YYYY-MM-DD)", f.PaymentDate)
		_ = c.payroll.Submit(ctx)
	default:
		fmt.Fprintln(c.out, "commands: add, 1-6, logout, quit")
	}
}

func (c *console) ask(label string) string {
	line, _ := c.readLine(label + ": ")
	return strings.TrimSpace(line)
}

func (c *console) askDefault(label, def string) string {
	line, _ := c.readLine(fmt.Sprintf("%s [%s]: ", label, def))
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func (c *console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}
