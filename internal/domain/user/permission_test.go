package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		action Action
		want   bool
	}{
		{"employee can request leave", RoleEmployee, ActionLeaveCreate, true},
		{"employee can add employees", RoleEmployee, ActionEmployeeCreate, true},
		{"employee cannot approve leave", RoleEmployee, ActionLeaveApprove, false},
		{"employee cannot write reviews", RoleEmployee, ActionReviewCreate, false},
		{"employee cannot create payroll", RoleEmployee, ActionPayrollCreate, false},
		{"manager can approve leave", RoleManager, ActionLeaveApprove, true},
		{"manager can write reviews", RoleManager, ActionReviewCreate, true},
		{"manager cannot create payroll", RoleManager, ActionPayrollCreate, false},
		{"hr_admin can create payroll", RoleHRAdmin, ActionPayrollCreate, true},
		{"unknown role gets nothing", Role("contractor"), ActionLeaveCreate, false},
		{"zero role gets nothing", Role(""), ActionEmployeeCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.action))
		})
	}
}

func TestIsManager(t *testing.T) {
	manager := User{Role: RoleManager}
	admin := User{Role: RoleHRAdmin}
	regular := User{Role: RoleEmployee}

	assert.True(t, manager.IsManager())
	assert.True(t, admin.IsManager())
	assert.False(t, regular.IsManager())
	assert.True(t, admin.IsHRAdmin())
	assert.False(t, manager.IsHRAdmin())
}
