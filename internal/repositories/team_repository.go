package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) FindByOwner(ctx context.Context, ownerID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).First(&team, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) Create(ctx context.Context, ownerID string) (*model.Team, error) {
	now := time.Now().UTC()
	team := &model.Team{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// MemberIDs returns the member ids of a team in insertion order.
func (r *TeamRepository) MemberIDs(ctx context.Context, teamID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("team_id = ?", teamID).
		Order("created_at asc").
		Pluck("member_id", &ids).Error
	return ids, err
}

func (r *TeamRepository) HasMember(ctx context.Context, teamID, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("team_id = ? AND member_id = ?", teamID, memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, memberID string) error {
	member := &model.TeamMember{
		TeamID:    teamID,
		MemberID:  memberID,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// RemoveMember deletes the membership row if present. Removing an
// absent member is not an error.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, memberID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.TeamMember{}, "team_id = ? AND member_id = ?", teamID, memberID).Error
}
