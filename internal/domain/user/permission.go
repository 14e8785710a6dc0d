package user

// Action names a UI affordance that is shown or hidden based on the cached
// role. This gates visibility only; the backend independently enforces
// authorization on every call.
type Action string

const (
	ActionEmployeeCreate Action = "employee.create"
	ActionLeaveCreate    Action = "leave.create"
	ActionLeaveApprove   Action = "leave.approve"
	ActionReviewCreate   Action = "review.create"
	ActionPayrollCreate  Action = "payroll.create"
)

// RoleActions maps roles to the actions their views expose.
var RoleActions = map[Role][]Action{
	RoleHRAdmin: {
		ActionEmployeeCreate,
		ActionLeaveCreate,
		ActionLeaveApprove,
		ActionReviewCreate,
		ActionPayrollCreate,
	},
	RoleManager: {
		ActionEmployeeCreate,
		ActionLeaveCreate,
		ActionLeaveApprove,
		ActionReviewCreate,
	},
	RoleEmployee: {
		ActionEmployeeCreate,
		ActionLeaveCreate,
	},
}

// Can checks if a role exposes a specific action.
func Can(role Role, action Action) bool {
	actions, exists := RoleActions[role]
	if !exists {
		return false
	}

	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
