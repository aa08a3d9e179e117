package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

// TeamService maintains each user's private assignment picklist.
// Membership is directional: being in A's list does not put A in the
// member's list, and it grants no task permissions on either side.
type TeamService struct {
	teams *repository.TeamRepository
	users *repository.UserRepository
}

func NewTeamService(teams *repository.TeamRepository, users *repository.UserRepository) *TeamService {
	return &TeamService{
		teams: teams,
		users: users,
	}
}

// Get returns the owner's member list, creating an empty list on first
// call.
func (s *TeamService) Get(ctx context.Context, ownerID string) ([]dto.UserSummary, error) {
	team, err := s.ensureTeam(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.members(ctx, team)
}

func (s *TeamService) AddMember(ctx context.Context, ownerID, email string) ([]dto.UserSummary, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if user.ID == ownerID {
		return nil, apperrors.ErrSelfAdd
	}

	team, err := s.ensureTeam(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	exists, err := s.teams.HasMember(ctx, team.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateMember
	}

	if err := s.teams.AddMember(ctx, team.ID, user.ID); err != nil {
		return nil, err
	}

	return s.members(ctx, team)
}

// RemoveMember removes the user from the owner's list. Removing an
// absent member is a no-op; only a missing list is an error.
func (s *TeamService) RemoveMember(ctx context.Context, ownerID, memberID string) ([]dto.UserSummary, error) {
	team, err := s.teams.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	if err := s.teams.RemoveMember(ctx, team.ID, memberID); err != nil {
		return nil, err
	}

	return s.members(ctx, team)
}

func (s *TeamService) ensureTeam(ctx context.Context, ownerID string) (*model.Team, error) {
	team, err := s.teams.FindByOwner(ctx, ownerID)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.teams.Create(ctx, ownerID)
}

func (s *TeamService) members(ctx context.Context, team *model.Team) ([]dto.UserSummary, error) {
	ids, err := s.teams.MemberIDs(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			summaries = append(summaries, toUserSummary(&u))
		}
	}
	return summaries, nil
}
