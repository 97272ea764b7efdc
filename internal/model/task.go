package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptyLegacyTask is returned when a legacy task string has no flag character
var ErrEmptyLegacyTask = errors.New("legacy task string is empty")

// Task represents a single to-do item
type Task struct {
	ID   string `json:"id"`   // stable row key, never shown
	Done bool   `json:"done"` // completion flag
	Text string `json:"text"` // free text, may be empty
}

// NewTask creates a pending task with a fresh row key
func NewTask(text string) Task {
	return Task{
		ID:   generateTaskID(),
		Text: text,
	}
}

// DefaultTasks returns the seed list used when nothing was saved yet
func DefaultTasks() []Task {
	return []Task{
		NewTask("Original"),
		NewTask("Tasks"),
	}
}

// Status returns the completion status of the task
func (t Task) Status() Status {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// Toggled returns a copy of the task with the done flag flipped
func (t Task) Toggled() Task {
	t.Done = !t.Done
	return t
}

// Legacy returns the task in the old flag-prefixed string form ("+text" or "-text")
func (t Task) Legacy() string {
	return string(t.Status().Flag()) + t.Text
}

// String implements fmt.Stringer using the legacy form, which is compact in logs
func (t Task) String() string {
	return t.Legacy()
}

// ParseLegacy decodes a flag-prefixed task string. The returned task gets a new row key.
func ParseLegacy(s string) (Task, error) {
	if s == "" {
		return Task{}, ErrEmptyLegacyTask
	}

	status, ok := StatusFromFlag(s[0])
	if !ok {
		return Task{}, fmt.Errorf("invalid legacy task flag %q", s[0])
	}

	task := NewTask(s[1:])
	task.Done = status == StatusDone
	return task, nil
}

// EnsureID assigns a row key to a task that was stored without one
func (t Task) EnsureID() Task {
	if t.ID == "" {
		t.ID = generateTaskID()
	}
	return t
}

// generateTaskID returns a time-ordered unique row key
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
