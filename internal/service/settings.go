package service

import (
	"context"
	"errors"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
	"github.com/myra/bird-quiz-bot/internal/infra/postgres/repository"
)

// SettingsRepository persists per-user quiz settings.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.QuizSettings, error)
	Upsert(ctx context.Context, settings *entities.QuizSettings) error
}

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetOrCreate loads the user's settings, creating and persisting the
// defaults (everything enabled) when none exist yet.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.QuizSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			settings = entities.NewQuizSettings(userID)
			if err := s.repo.Upsert(ctx, settings); err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, err
	}
	return settings, nil
}

// ToggleQuestionType flips one question type and persists the result.
// Disabling the last enabled type is rejected by the settings value
// itself and surfaces as entities.ErrNoQuestionTypes.
func (s *SettingsService) ToggleQuestionType(ctx context.Context, userID int64, t entities.QuestionType) (*entities.QuizSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := settings.ToggleQuestionType(t); err != nil {
		return settings, err
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ToggleAnswerFormat flips one answer format and persists the result.
func (s *SettingsService) ToggleAnswerFormat(ctx context.Context, userID int64, f entities.AnswerFormat) (*entities.QuizSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := settings.ToggleAnswerFormat(f); err != nil {
		return settings, err
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
