package constants

type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusCancel     TaskStatus = "cancel"
	StatusCompleted  TaskStatus = "completed"
	StatusFail       TaskStatus = "fail"
)

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCancel, StatusCompleted, StatusFail:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further lifecycle transition is possible.
func (s TaskStatus) Terminal() bool {
	return s == StatusCancel || s == StatusCompleted || s == StatusFail
}

type RespondStatus string

const (
	RespondNew        RespondStatus = "new"
	RespondInProgress RespondStatus = "in_progress"
	RespondCancel     RespondStatus = "cancel"
)

func ValidRespondStatus(s RespondStatus) bool {
	switch s {
	case RespondNew, RespondInProgress, RespondCancel:
		return true
	default:
		return false
	}
}
