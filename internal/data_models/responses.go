package dto

import (
	"time"

	"taskboard.com/taskboard/internal/constants"
)

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskResponse is the external task representation: relation ids are
// expanded into user summaries the way the board UI consumes them.
// Assignee is null when unset or when the reference is dangling.
type TaskResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	DueDate     string                 `json:"dueDate"`
	Priority    constants.TaskPriority `json:"priority"`
	Status      constants.TaskStatus   `json:"status"`
	Assignee    *UserSummary           `json:"assignee"`
	CreatedBy   UserSummary            `json:"createdBy"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
