package constants

// Role is the relationship between an acting user and one specific task.
// It is recomputed from persisted state on every call, never stored.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleExecutor Role = "executor"
	RoleVisitor  Role = "visitor"
)

// Action is what the available-action projection offers the caller.
type Action string

const (
	ActionNone     Action = ""
	ActionRespond  Action = "respond"
	ActionCancel   Action = "cancel"
	ActionRefuse   Action = "refuse"
	ActionComplete Action = "complete"
)
