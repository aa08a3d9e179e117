package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/access"
	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type TaskService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
	}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]dto.TaskResponse, error) {
	tasks, err := s.tasks.ListVisibleTo(ctx, userID)
	if err != nil {
		return nil, err
	}

	users, err := s.relatedUsers(ctx, tasks)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, toTaskResponse(&tasks[i], users))
	}
	return responses, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// An uninvolved user gets a 403, not a 404: the task exists, they
	// just may not see it.
	if !access.RoleOf(task, userID).CanView() {
		return nil, apperrors.ErrAccessDenied
	}

	return s.respond(ctx, task)
}

func (s *TaskService) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    constants.TaskPriority(req.Priority),
		Status:      constants.TaskStatus(req.Status),
		AssigneeID:  req.AssigneeID,
		// The creator is always the authenticated requester; any
		// client-supplied value is ignored.
		CreatedByID: userID,
	}

	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if task.Status == "" {
		task.Status = constants.StatusPending
	}

	task, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	return s.respond(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	role := access.RoleOf(task, userID)
	if !role.CanView() {
		return nil, apperrors.ErrAccessDenied
	}

	access.ApplyPatch(task, role, access.Patch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    constants.TaskPriority(req.Priority),
		Status:      constants.TaskStatus(req.Status),
		AssigneeID:  req.AssigneeID,
		AssigneeSet: req.AssigneeSet,
	})

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	return s.respond(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !access.RoleOf(task, userID).CanDelete() {
		return apperrors.ErrAccessDenied
	}

	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) findTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) respond(ctx context.Context, task *model.Task) (*dto.TaskResponse, error) {
	users, err := s.relatedUsers(ctx, []model.Task{*task})
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(task, users)
	return &resp, nil
}

func (s *TaskService) relatedUsers(ctx context.Context, tasks []model.Task) (map[string]model.User, error) {
	ids := make([]string, 0, 2*len(tasks))
	seen := make(map[string]bool, 2*len(tasks))

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for i := range tasks {
		add(tasks[i].CreatedByID)
		if tasks[i].AssigneeID != nil {
			add(*tasks[i].AssigneeID)
		}
	}

	return s.users.FindByIDs(ctx, ids)
}

func toTaskResponse(task *model.Task, users map[string]model.User) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      task.Status,
		CreatedBy:   dto.UserSummary{ID: task.CreatedByID},
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if creator, ok := users[task.CreatedByID]; ok {
		resp.CreatedBy = toUserSummary(&creator)
	}

	// A dangling assignee reference renders as null; it still counts
	// for access checks, but there is nobody to display.
	if task.AssigneeID != nil {
		if assignee, ok := users[*task.AssigneeID]; ok {
			summary := toUserSummary(&assignee)
			resp.Assignee = &summary
		}
	}

	return resp
}

func toUserSummary(user *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
