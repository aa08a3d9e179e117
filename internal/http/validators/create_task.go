package validators

import (
	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.NewValidation("title is required")
	}
	if r.DueDate == "" {
		return apperrors.NewValidation("dueDate is required")
	}
	return validateEnums(r.Priority, r.Status)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	return validateEnums(r.Priority, r.Status)
}

func validateEnums(priority, status string) error {
	if priority != "" && !constants.ValidPriority(constants.TaskPriority(priority)) {
		return apperrors.NewValidation("priority must be one of high, medium, low")
	}
	if status != "" && !constants.ValidStatus(constants.TaskStatus(status)) {
		return apperrors.NewValidation("status must be one of pending, in-progress, completed")
	}
	return nil
}
