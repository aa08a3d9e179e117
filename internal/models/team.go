package model

import "time"

// Team is a user's private assignment picklist. One list per owner;
// membership grants no task permissions on its own.
type Team struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"uniqueIndex;size:36;not null" json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TeamMember struct {
	TeamID    string    `gorm:"primaryKey;size:36" json:"teamId"`
	MemberID  string    `gorm:"primaryKey;size:36" json:"memberId"`
	CreatedAt time.Time `json:"createdAt"`
}
