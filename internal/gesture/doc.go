// Package gesture implements the horizontal swipe-to-delete state machine used
// by the task list. It knows nothing about widgets: callers feed it touch or
// drag coordinates keyed by a stable row key and read back offsets.
package gesture
