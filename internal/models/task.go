package model

import (
	"time"

	"taskboard.com/taskboard/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description"`
	DueDate     string                 `gorm:"size:10;not null" json:"dueDate"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	AssigneeID  *string                `gorm:"size:36;index" json:"-"`
	CreatedByID string                 `gorm:"size:36;not null;index" json:"-"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
