package validators

import (
	"regexp"

	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Name == "" {
		return apperrors.NewValidation("name is required")
	}
	if len(r.Name) > 255 {
		return apperrors.NewValidation("name must be at most 255 characters")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < 8 {
		return apperrors.NewValidation("password must be at least 8 characters")
	}
	if len(r.Password) > 72 {
		return apperrors.NewValidation("password must be at most 72 characters")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" {
		return apperrors.NewValidation("email is required")
	}
	if r.Password == "" {
		return apperrors.NewValidation("password is required")
	}
	return nil
}

func ValidateAddMemberRequest(r *dto.AddMemberRequest) error {
	return validateEmail(r.Email)
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.NewValidation("email is required")
	}
	if !emailRegexp.MatchString(email) {
		return apperrors.NewValidation("email must be a valid email address")
	}
	return nil
}
