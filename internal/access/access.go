package access

import (
	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
)

// Role is a user's relation to a task, derived from the task's creator
// and assignee fields at the moment of evaluation. It is never stored,
// so reassigning a task immediately changes who may act on it.
type Role int

const (
	None Role = iota
	Creator
	Assignee
	Both
)

func RoleOf(t *model.Task, userID string) Role {
	isCreator := t.CreatedByID == userID
	isAssignee := t.AssigneeID != nil && *t.AssigneeID == userID

	switch {
	case isCreator && isAssignee:
		return Both
	case isCreator:
		return Creator
	case isAssignee:
		return Assignee
	default:
		return None
	}
}

// CanView reports whether the role may read the task. Listing uses the
// same predicate: a task is visible iff the user is creator or assignee.
func (r Role) CanView() bool {
	return r != None
}

// CanDelete is creator-only. An assignee can view and update status but
// never delete.
func (r Role) CanDelete() bool {
	return r == Creator || r == Both
}

// Patch holds the field changes a caller asked for. Empty fields mean
// "leave unchanged". AssigneeID is different: the caller may clear the
// assignee by sending an explicit null, so AssigneeSet records whether
// the field was present at all.
type Patch struct {
	Title       string
	Description string
	DueDate     string
	Priority    constants.TaskPriority
	Status      constants.TaskStatus
	AssigneeID  *string
	AssigneeSet bool
}

// ApplyPatch writes the fields of p that role r may change onto t.
// A creator may change every field; an assignee only status. Fields
// outside the caller's allowed set are dropped silently, not rejected.
// Roles without update rights leave t untouched.
func ApplyPatch(t *model.Task, r Role, p Patch) {
	if !r.CanView() {
		return
	}

	if p.Status != "" {
		t.Status = p.Status
	}

	if r == Assignee {
		return
	}

	if p.Title != "" {
		t.Title = p.Title
	}
	if p.Description != "" {
		t.Description = p.Description
	}
	if p.DueDate != "" {
		t.DueDate = p.DueDate
	}
	if p.Priority != "" {
		t.Priority = p.Priority
	}
	if p.AssigneeSet {
		t.AssigneeID = p.AssigneeID
	}
}
