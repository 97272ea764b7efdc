package model

// Status represents the completion state of a task
type Status string

const (
	// StatusPending means the task is still open
	StatusPending Status = "pending"

	// StatusDone means the task was completed
	StatusDone Status = "done"
)

// Legacy single-character flags that prefix a task in the old string encoding.
const (
	FlagPending = '+'
	FlagDone    = '-'
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Flag returns the legacy prefix character for the status
func (s Status) Flag() byte {
	if s == StatusDone {
		return FlagDone
	}
	return FlagPending
}

// StatusFromFlag maps a legacy prefix character back to a Status
func StatusFromFlag(flag byte) (Status, bool) {
	switch flag {
	case FlagPending:
		return StatusPending, true
	case FlagDone:
		return StatusDone, true
	default:
		return "", false
	}
}
