package constants

const (
	TaskStatusStarted    = "started"
	TaskStatusInProgress = "in_progress"
	TaskStatusFinished   = "finished"
	TaskStatusPaid       = "paid"
)

// TaskStatuses lists every valid status in lifecycle order. The order is
// also used for the dashboard chart buckets.
var TaskStatuses = []string{
	TaskStatusStarted,
	TaskStatusInProgress,
	TaskStatusFinished,
	TaskStatusPaid,
}

func IsValidTaskStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}
