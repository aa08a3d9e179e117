package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "taskboard.com/taskboard/internal/errors"
	repository "taskboard.com/taskboard/internal/repositories"
)

func newAuthService(t *testing.T) *AuthService {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	return NewAuthService(users, []byte("test-secret"), time.Hour)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	reg, err := service.Register(ctx, "Alice", "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" || reg.User.ID == "" {
		t.Fatalf("incomplete auth response: %+v", reg)
	}

	login, err := service.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user %s, want %s", login.User.ID, reg.User.ID)
	}

	userID, err := service.ParseToken(login.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("token subject = %s, want %s", userID, reg.User.ID)
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := service.Register(ctx, "Imposter", "alice@example.com", "password2")
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("duplicate register = %v, want email taken", err)
	}
}

func TestAuthService_BadCredentials(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := service.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want invalid credentials", err)
	}
	if _, err := service.Login(ctx, "nobody@example.com", "password1"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email = %v, want invalid credentials", err)
	}
}

func TestAuthService_RejectsForeignToken(t *testing.T) {
	ours := newAuthService(t)
	theirs := NewAuthService(nil, []byte("other-secret"), time.Hour)

	token, err := theirs.issueToken("someone")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := ours.ParseToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
	if _, err := ours.ParseToken("not.a.token"); err == nil {
		t.Error("garbage token was accepted")
	}
}
