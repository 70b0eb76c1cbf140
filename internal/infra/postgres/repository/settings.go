package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository struct {
	db DB
}

func NewSettingsRepository(db DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Upsert creates or replaces the user's settings row. The enabled sets
// are stored as text arrays.
func (r *SettingsRepository) Upsert(ctx context.Context, s *entities.QuizSettings) error {
	query := `
		INSERT INTO quiz_settings (user_id, question_types, answer_formats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET
			question_types = excluded.question_types,
			answer_formats = excluded.answer_formats,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(
		ctx, query,
		s.UserID,
		typesToStrings(s.QuestionTypes),
		formatsToStrings(s.AnswerFormats),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}

// UpsertDefaults writes the default settings (everything enabled) for
// the user, replacing whatever was there.
func (r *SettingsRepository) UpsertDefaults(ctx context.Context, userID int64) error {
	return r.Upsert(ctx, entities.NewQuizSettings(userID))
}

// GetByUserID loads the user's settings. Returns ErrSettingsNotFound
// when no row exists.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.QuizSettings, error) {
	query := `
		SELECT user_id, question_types, answer_formats, created_at, updated_at
		FROM quiz_settings
		WHERE user_id = $1
	`

	var (
		s       entities.QuizSettings
		types   []string
		formats []string
	)

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&types,
		&formats,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s.QuestionTypes = stringsToTypes(types)
	s.AnswerFormats = stringsToFormats(formats)

	return &s, nil
}

func typesToStrings(in []entities.QuestionType) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = string(t)
	}
	return out
}

func formatsToStrings(in []entities.AnswerFormat) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[i] = string(f)
	}
	return out
}

func stringsToTypes(in []string) []entities.QuestionType {
	out := make([]entities.QuestionType, len(in))
	for i, s := range in {
		out[i] = entities.QuestionType(s)
	}
	return out
}

func stringsToFormats(in []string) []entities.AnswerFormat {
	out := make([]entities.AnswerFormat, len(in))
	for i, s := range in {
		out[i] = entities.AnswerFormat(s)
	}
	return out
}
