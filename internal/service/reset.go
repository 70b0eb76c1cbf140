package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/myra/bird-quiz-bot/internal/infra/postgres/repository"
)

// Transactor runs a function within a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ResetService performs a full user reset: settings back to defaults
// and progress wiped, atomically.
type ResetService struct {
	tr Transactor
}

func NewResetService(tr Transactor) *ResetService {
	return &ResetService{tr: tr}
}

func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		settingsRepo := repository.NewSettingsRepository(tx)
		progressRepo := repository.NewProgressRepository(tx)

		if err := settingsRepo.UpsertDefaults(ctx, userID); err != nil {
			return err
		}

		return progressRepo.Delete(ctx, userID)
	})
}
