package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrTaskNotFound    = goerr.New("task not found")
	ErrInvalidPriority = goerr.New("invalid priority")
	ErrInvalidStatus   = goerr.New("invalid status")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Validate checks if the priority is valid
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return goerr.Wrap(ErrInvalidPriority, "unknown priority", goerr.V("priority", p))
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Validate checks if the status is valid
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	default:
		return goerr.Wrap(ErrInvalidStatus, "unknown status", goerr.V("status", s))
	}
}

// Task is a single task record. Tasks are addressed by their zero-based
// position in the stored sequence at lookup time: deleting a task shifts
// the IDs of all later tasks. UID is a stable identifier assigned at
// creation for callers that need one, but it is never used for
// positional addressing.
type Task struct {
	UID         string     `json:"uid"`
	Description string     `json:"task"`
	DueAt       *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTask creates a pending task with a fresh UID
func NewTask(description string, dueAt *time.Time, priority Priority) *Task {
	return &Task{
		UID:         uuid.New().String(),
		Description: description,
		DueAt:       dueAt,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
}

// TaskPatch is a merge patch for Task. Only fields representable here
// can be updated, so a patch can never introduce keys outside the task
// schema. A nil field means "leave unchanged"; ClearDueAt removes the
// due date explicitly.
type TaskPatch struct {
	Description *string
	DueAt       *time.Time
	ClearDueAt  bool
	Priority    *Priority
	Status      *Status
}

// Empty reports whether the patch changes nothing
func (p *TaskPatch) Empty() bool {
	return p.Description == nil && p.DueAt == nil && !p.ClearDueAt && p.Priority == nil && p.Status == nil
}

// Apply merges the patch into the task
func (p *TaskPatch) Apply(t *Task) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueAt != nil {
		t.DueAt = p.DueAt
	}
	if p.ClearDueAt {
		t.DueAt = nil
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// TaskFields is the structured result of parsing free-form task details
type TaskFields struct {
	Description string
	DueAt       *time.Time
	Priority    Priority
}
