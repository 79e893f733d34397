package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/neonauction/auction-server/internal/auction"
)

// Archiver persists completed auction results. It is optional: when no
// DATABASE_URL is configured the server runs memory-only and results die
// with the room.
type Archiver struct {
	db  *gorm.DB
	log zerolog.Logger
}

func Open(dsn string, log zerolog.Logger) (*Archiver, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}
	if err := db.AutoMigrate(&ArchivedRoom{}, &ArchivedTeam{}); err != nil {
		return nil, fmt.Errorf("migrate archive schema: %w", err)
	}
	return &Archiver{db: db, log: log}, nil
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *gorm.DB, log zerolog.Logger) (*Archiver, error) {
	if err := db.AutoMigrate(&ArchivedRoom{}, &ArchivedTeam{}); err != nil {
		return nil, fmt.Errorf("migrate archive schema: %w", err)
	}
	return &Archiver{db: db, log: log}, nil
}

// ArchiveResult writes one completed room. Called from the room's completion
// callback on its own goroutine, never under a room lock.
func (a *Archiver) ArchiveResult(ctx context.Context, res auction.FinalResult) error {
	rec, err := recordFromResult(res)
	if err != nil {
		return err
	}
	if err := a.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("archive room %s: %w", res.Code, err)
	}
	a.log.Info().Str("code", res.Code).Str("winner", res.Winner).Msg("room archived")
	return nil
}

// Archive is the completion callback shape the room store expects.
func (a *Archiver) Archive(res auction.FinalResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.ArchiveResult(ctx, res); err != nil {
		a.log.Error().Err(err).Str("code", res.Code).Msg("archive failed")
	}
}

func recordFromResult(res auction.FinalResult) (*ArchivedRoom, error) {
	leaderboard, err := json.Marshal(res.Leaderboard)
	if err != nil {
		return nil, fmt.Errorf("marshal leaderboard: %w", err)
	}
	rec := &ArchivedRoom{
		ID:          uuid.New(),
		Code:        res.Code,
		Winner:      res.Winner,
		WinnerScore: res.WinnerScore,
		Leaderboard: leaderboard,
		CompletedAt: res.CompletedAt,
	}
	for _, t := range res.Teams {
		roster, err := json.Marshal(t.Players)
		if err != nil {
			return nil, fmt.Errorf("marshal roster for %s: %w", t.Team, err)
		}
		at := ArchivedTeam{
			ID:              uuid.New(),
			RoomID:          rec.ID,
			Team:            t.Team,
			Username:        t.Username,
			BudgetRemaining: t.BudgetRemaining,
			Qualified:       t.Qualified,
			Score:           t.Score,
			Roster:          roster,
		}
		if t.XI != nil {
			xi, err := json.Marshal(t.XI)
			if err != nil {
				return nil, fmt.Errorf("marshal xi for %s: %w", t.Team, err)
			}
			at.XI = xi
		}
		rec.Teams = append(rec.Teams, at)
	}
	return rec, nil
}

// FindByCode loads archived rooms for a code, newest first.
func (a *Archiver) FindByCode(ctx context.Context, code string) ([]ArchivedRoom, error) {
	var rooms []ArchivedRoom
	err := a.db.WithContext(ctx).
		Preload("Teams").
		Where("code = ?", code).
		Order("completed_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("find archived rooms for %s: %w", code, err)
	}
	return rooms, nil
}
