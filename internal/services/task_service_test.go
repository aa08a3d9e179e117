package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Task{}, &model.Team{}, &model.TeamMember{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTaskService(t *testing.T) (*TaskService, *repository.UserRepository) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	return NewTaskService(tasks, users), users
}

func createUser(t *testing.T, users *repository.UserRepository, name, email string) *model.User {
	u, err := users.Create(context.Background(), &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: []byte("x"),
	})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}

func TestTaskService_CreateDefaultsAndCreator(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{
		Title:      "Ship release",
		DueDate:    "2024-06-01",
		AssigneeID: &bob.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.Priority != constants.PriorityMedium {
		t.Errorf("priority = %s, want medium default", task.Priority)
	}
	if task.Status != constants.StatusPending {
		t.Errorf("status = %s, want pending default", task.Status)
	}
	if task.CreatedBy.ID != alice.ID {
		t.Errorf("createdBy = %s, want requester %s", task.CreatedBy.ID, alice.ID)
	}
	if task.Assignee == nil || task.Assignee.ID != bob.ID {
		t.Errorf("assignee not embedded: %+v", task.Assignee)
	}
}

func TestTaskService_ListVisibility(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")
	carol := createUser(t, users, "Carol", "carol@example.com")

	ctx := context.Background()
	if _, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{Title: "own", DueDate: "2024-06-01"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{Title: "shared", DueDate: "2024-06-02", AssigneeID: &bob.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	aliceTasks, err := service.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aliceTasks) != 2 {
		t.Errorf("alice sees %d tasks, want 2", len(aliceTasks))
	}

	bobTasks, err := service.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bobTasks) != 1 || bobTasks[0].Title != "shared" {
		t.Errorf("bob sees %+v, want only the shared task", bobTasks)
	}

	carolTasks, err := service.List(ctx, carol.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(carolTasks) != 0 {
		t.Errorf("carol sees %d tasks, want 0", len(carolTasks))
	}
}

func TestTaskService_GetDistinguishesDenialFromMissing(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	carol := createUser(t, users, "Carol", "carol@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{Title: "private", DueDate: "2024-06-01"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.Get(ctx, carol.ID, task.ID); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("uninvolved get = %v, want access denied", err)
	}
	if _, err := service.Get(ctx, carol.ID, "no-such-task"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("missing get = %v, want not found", err)
	}
	if _, err := service.Get(ctx, alice.ID, task.ID); err != nil {
		t.Errorf("creator get failed: %v", err)
	}
}

func TestTaskService_ReassignmentGrantsAccess(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{
		Title:    "Ship release",
		DueDate:  "2024-06-01",
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.Get(ctx, bob.ID, task.ID); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Fatalf("bob could access before assignment: %v", err)
	}

	if _, err := service.Update(ctx, alice.ID, task.ID, dto.UpdateTaskRequest{
		AssigneeID:  &bob.ID,
		AssigneeSet: true,
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	got, err := service.Get(ctx, bob.ID, task.ID)
	if err != nil {
		t.Fatalf("bob still denied after assignment: %v", err)
	}
	if got.Title != "Ship release" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestTaskService_AssigneeUpdateAppliesStatusOnly(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{
		Title:      "Ship release",
		DueDate:    "2024-06-01",
		AssigneeID: &bob.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := service.Update(ctx, bob.ID, task.ID, dto.UpdateTaskRequest{
		Title:  "hacked",
		Status: "completed",
	})
	if err != nil {
		t.Fatalf("assignee update: %v", err)
	}

	if updated.Status != constants.StatusCompleted {
		t.Errorf("status = %s, want completed", updated.Status)
	}
	if updated.Title != "Ship release" {
		t.Errorf("title = %q, assignee must not change it", updated.Title)
	}
}

func TestTaskService_AssigneeNullVersusOmitted(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{
		Title:      "Ship release",
		DueDate:    "2024-06-01",
		AssigneeID: &bob.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Omitted assigneeId leaves the assignee in place.
	updated, err := service.Update(ctx, alice.ID, task.ID, dto.UpdateTaskRequest{Title: "renamed"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Assignee == nil || updated.Assignee.ID != bob.ID {
		t.Errorf("assignee = %+v, want bob preserved", updated.Assignee)
	}

	// Explicit null clears it, and with it bob's access.
	updated, err = service.Update(ctx, alice.ID, task.ID, dto.UpdateTaskRequest{AssigneeSet: true})
	if err != nil {
		t.Fatalf("clear assignee: %v", err)
	}
	if updated.Assignee != nil {
		t.Errorf("assignee = %+v, want nil", updated.Assignee)
	}
	if _, err := service.Get(ctx, bob.ID, task.ID); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("bob get after unassign = %v, want access denied", err)
	}
}

func TestTaskService_UpdateByUninvolvedDenied(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	carol := createUser(t, users, "Carol", "carol@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{Title: "private", DueDate: "2024-06-01"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.Update(ctx, carol.ID, task.ID, dto.UpdateTaskRequest{Status: "completed"}); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Fatalf("uninvolved update = %v, want access denied", err)
	}

	// A denied update must leave the stored task untouched.
	got, err := service.Get(ctx, alice.ID, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != constants.StatusPending {
		t.Errorf("status = %s after denied update, want pending", got.Status)
	}
}

func TestTaskService_DeleteRequiresCreator(t *testing.T) {
	service, users := newTaskService(t)
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	ctx := context.Background()
	task, err := service.Create(ctx, alice.ID, dto.CreateTaskRequest{
		Title:      "Ship release",
		DueDate:    "2024-06-01",
		AssigneeID: &bob.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The assignee can view and update, but never delete.
	if err := service.Delete(ctx, bob.ID, task.ID); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Fatalf("assignee delete = %v, want access denied", err)
	}
	if _, err := service.Get(ctx, bob.ID, task.ID); err != nil {
		t.Fatalf("task vanished after denied delete: %v", err)
	}

	if err := service.Delete(ctx, alice.ID, task.ID); err != nil {
		t.Fatalf("creator delete: %v", err)
	}
	if _, err := service.Get(ctx, alice.ID, task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("get after delete = %v, want not found", err)
	}
}

func TestTaskService_DanglingAssigneeRendersNull(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	service := NewTaskService(tasks, users)

	alice := createUser(t, users, "Alice", "alice@example.com")

	ctx := context.Background()
	ghost := "ghost-user-id"
	stored, err := tasks.Create(ctx, &model.Task{
		Title:       "orphaned",
		DueDate:     "2024-06-01",
		Priority:    constants.PriorityMedium,
		Status:      constants.StatusPending,
		AssigneeID:  &ghost,
		CreatedByID: alice.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := service.Get(ctx, alice.ID, stored.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Assignee != nil {
		t.Errorf("dangling assignee rendered as %+v, want null", got.Assignee)
	}

	// The dangling id grants no rights to anyone else either.
	if _, err := service.Get(ctx, "some-other-user", stored.ID); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("stranger get = %v, want access denied", err)
	}
}

func TestTaskService_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	service := NewTaskService(tasks, users)

	alice := createUser(t, users, "Alice", "alice@example.com")

	ctx := context.Background()
	old := &model.Task{Title: "old", DueDate: "2024-06-01", Priority: constants.PriorityMedium, Status: constants.StatusPending, CreatedByID: alice.ID}
	if _, err := tasks.Create(ctx, old); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Force distinct timestamps; sqlite stores what we give it.
	old.CreatedAt = old.CreatedAt.Add(-time.Hour)
	if err := db.Save(old).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
	if _, err := tasks.Create(ctx, &model.Task{Title: "new", DueDate: "2024-06-02", Priority: constants.PriorityMedium, Status: constants.StatusPending, CreatedByID: alice.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := service.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "new" {
		t.Errorf("list order = %+v, want newest first", list)
	}
}
