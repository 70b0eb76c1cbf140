package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

var ErrProgressNotFound = errors.New("progress not found")

type ProgressRepository struct {
	db DB
}

func NewProgressRepository(db DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert creates or replaces the user's progress row. The rolling
// window and per-species counters are stored as jsonb.
func (r *ProgressRepository) Upsert(ctx context.Context, p entities.Progress) error {
	recent, err := json.Marshal(p.Recent)
	if err != nil {
		return fmt.Errorf("marshal recent answers: %w", err)
	}

	bySpecies, err := json.Marshal(p.BySpecies)
	if err != nil {
		return fmt.Errorf("marshal species stats: %w", err)
	}

	query := `
		INSERT INTO quiz_progress (
			user_id, total, correct, accuracy, streak, max_streak,
			last_played_at, recent_answers, species_stats
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET
			total = excluded.total,
			correct = excluded.correct,
			accuracy = excluded.accuracy,
			streak = excluded.streak,
			max_streak = excluded.max_streak,
			last_played_at = excluded.last_played_at,
			recent_answers = excluded.recent_answers,
			species_stats = excluded.species_stats
	`

	var lastPlayed *time.Time
	if !p.LastPlayedAt.IsZero() {
		lastPlayed = &p.LastPlayedAt
	}

	_, err = r.db.Exec(
		ctx, query,
		p.UserID,
		p.Total,
		p.Correct,
		p.Accuracy,
		p.Streak,
		p.MaxStreak,
		lastPlayed,
		recent,
		bySpecies,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	return nil
}

// GetByUserID loads the user's progress. Returns ErrProgressNotFound
// when the user has no saved row.
func (r *ProgressRepository) GetByUserID(ctx context.Context, userID int64) (entities.Progress, error) {
	query := `
		SELECT user_id, total, correct, accuracy, streak, max_streak,
		       last_played_at, recent_answers, species_stats
		FROM quiz_progress
		WHERE user_id = $1
	`

	var (
		p          entities.Progress
		lastPlayed *time.Time
		recent     []byte
		bySpecies  []byte
	)

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.Total,
		&p.Correct,
		&p.Accuracy,
		&p.Streak,
		&p.MaxStreak,
		&lastPlayed,
		&recent,
		&bySpecies,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Progress{}, ErrProgressNotFound
		}
		return entities.Progress{}, fmt.Errorf("get progress: %w", err)
	}

	if lastPlayed != nil {
		p.LastPlayedAt = *lastPlayed
	}
	if err := json.Unmarshal(recent, &p.Recent); err != nil {
		return entities.Progress{}, fmt.Errorf("unmarshal recent answers: %w", err)
	}
	if err := json.Unmarshal(bySpecies, &p.BySpecies); err != nil {
		return entities.Progress{}, fmt.Errorf("unmarshal species stats: %w", err)
	}

	return p, nil
}

// Delete removes the user's progress row. Deleting a missing row is
// not an error.
func (r *ProgressRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM quiz_progress WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
