package archive

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ArchivedRoom is the durable record of a completed auction. Rooms are
// memory-only while live; this is written once, on completion.
type ArchivedRoom struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	Code        string         `gorm:"size:6;not null;index"`
	Winner      string         `gorm:"size:8"`
	WinnerScore float64        `gorm:"not null;default:0"`
	Leaderboard datatypes.JSON `gorm:"type:jsonb"`
	CompletedAt time.Time      `gorm:"not null"`
	CreatedAt   time.Time
	Teams       []ArchivedTeam `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// ArchivedTeam is one team's closing position inside an archived room.
type ArchivedTeam struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	RoomID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Team            string         `gorm:"size:8;not null"`
	Username        string         `gorm:"size:64;not null"`
	BudgetRemaining float64        `gorm:"not null"`
	Qualified       bool           `gorm:"not null"`
	Score           *float64
	Roster          datatypes.JSON `gorm:"type:jsonb"`
	XI              datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time
}
