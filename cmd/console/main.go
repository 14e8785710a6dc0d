package main

import (
	"fmt"
	"os"

	"github.com/hrsuite/hrsuite-console/internal/config"
	"github.com/hrsuite/hrsuite-console/internal/pkg/sessionstore"
	"github.com/hrsuite/hrsuite-console/internal/repository/rest"
	"github.com/hrsuite/hrsuite-console/internal/shell"
	"github.com/hrsuite/hrsuite-console/internal/view/assistant"
	"github.com/hrsuite/hrsuite-console/internal/view/dashboard"
	"github.com/hrsuite/hrsuite-console/internal/view/employees"
	leaveview "github.com/hrsuite/hrsuite-console/internal/view/leave"
	"github.com/hrsuite/hrsuite-console/internal/view/login"
	payrollview "github.com/hrsuite/hrsuite-console/internal/view/payroll"
	performanceview "github.com/hrsuite/hrsuite-console/internal/view/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	sessions := sessionstore.NewFileStore(cfg.Session.FilePath)
	client := rest.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions)

	notify := &printNotifier{out: os.Stdout}

	authRepo := rest.NewAuthRepository(client)
	employeeRepo := rest.NewEmployeeRepository(client)
	departmentRepo := rest.NewDepartmentRepository(client)
	leaveRepo := rest.NewLeaveRepository(client)
	performanceRepo := rest.NewPerformanceRepository(client)
	payrollRepo := rest.NewPayrollRepository(client)
	chatRepo := rest.NewChatRepository(client)

	sh := shell.New(sessions, notify)
	client.OnUnauthorized(sh.HandleUnauthorized)

	app := &console{
		in:          os.Stdin,
		out:         os.Stdout,
		shell:       sh,
		login:       login.New(authRepo, sessions, notify),
		employees:   employees.New(employeeRepo, departmentRepo, sessions, notify),
		leave:       leaveview.New(leaveRepo, sessions, notify),
		performance: performanceview.New(performanceRepo, sessions, notify),
		payroll:     payrollview.New(payrollRepo, sessions, notify),
		dashboard:   dashboard.New(employeeRepo, leaveRepo, performanceRepo, payrollRepo),
		assistant:   assistant.New(chatRepo, sessions, notify),
	}

	fmt.Printf("Connected to %s\n", cfg.Backend.BaseURL)
	app.run()
}

type printNotifier struct {
	out *os.File
}

func (n *printNotifier) Success(msg string) { fmt.Fprintf(n.out, "\n✔ %s\n", msg) }
func (n *printNotifier) Error(msg string)   { fmt.Fprintf(n.out, "\n✖ %s\n", msg) }
