package domain

import "time"

// Task represents a single to-do item. A nil completion timestamp
// means the task is still open.
type Task struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask builds an open task with the given title. The empty title is
// allowed; the description starts empty and has no setter.
func NewTask(title string) Task {
	return Task{
		Title:       title,
		Description: "",
		CompletedAt: nil,
	}
}

// Complete stamps the task with the current time. Completing an
// already-completed task keeps the original timestamp.
func (t *Task) Complete() {
	if t.CompletedAt != nil {
		return
	}
	now := time.Now().UTC()
	t.CompletedAt = &now
}

// Uncomplete reopens the task.
func (t *Task) Uncomplete() {
	t.CompletedAt = nil
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.CompletedAt != nil
}

// Equal reports whether two tasks carry the same title, description and
// completion instant. Timestamps are compared with time.Time.Equal so a
// task stays equal to its serialized copy.
func (t Task) Equal(other Task) bool {
	if t.Title != other.Title || t.Description != other.Description {
		return false
	}
	if t.CompletedAt == nil || other.CompletedAt == nil {
		return t.CompletedAt == other.CompletedAt
	}
	return t.CompletedAt.Equal(*other.CompletedAt)
}

// Clone returns a copy that shares no state with the receiver.
func (t Task) Clone() Task {
	clone := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		clone.CompletedAt = &at
	}
	return clone
}
