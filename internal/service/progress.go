package service

import (
	"context"
	"errors"
	"sort"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
	"github.com/myra/bird-quiz-bot/internal/infra/postgres/repository"
)

// ProgressRepository persists per-user quiz progress.
type ProgressRepository interface {
	GetByUserID(ctx context.Context, userID int64) (entities.Progress, error)
	Upsert(ctx context.Context, p entities.Progress) error
}

type ProgressService struct {
	repo ProgressRepository
}

func NewProgressService(repo ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// GetOrCreate loads the user's saved progress, returning a fresh empty
// value when nothing was saved yet.
func (s *ProgressService) GetOrCreate(ctx context.Context, userID int64) (entities.Progress, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return entities.NewProgress(userID), nil
		}
		return entities.Progress{}, err
	}
	return p, nil
}

// Save persists the given progress value.
func (s *ProgressService) Save(ctx context.Context, p entities.Progress) error {
	return s.repo.Upsert(ctx, p)
}

// Reset replaces the user's progress with an empty value and returns it.
func (s *ProgressService) Reset(ctx context.Context, userID int64) (entities.Progress, error) {
	p := entities.NewProgress(userID)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return entities.Progress{}, err
	}
	return p, nil
}

// SpeciesRank pairs a species ID with its answer stats for ranking.
type SpeciesRank struct {
	SpeciesID string
	Stats     entities.SpeciesStats
}

// HardestSpecies returns up to limit species ordered by ascending
// accuracy, considering only species answered at least minAttempts
// times. Ties break on attempt count, more attempts first.
func HardestSpecies(p entities.Progress, minAttempts, limit int) []SpeciesRank {
	ranks := make([]SpeciesRank, 0, len(p.BySpecies))
	for id, st := range p.BySpecies {
		if st.Total >= minAttempts {
			ranks = append(ranks, SpeciesRank{SpeciesID: id, Stats: st})
		}
	}

	sort.Slice(ranks, func(i, j int) bool {
		ai, aj := ranks[i].Stats.Accuracy(), ranks[j].Stats.Accuracy()
		if ai != aj {
			return ai < aj
		}
		if ranks[i].Stats.Total != ranks[j].Stats.Total {
			return ranks[i].Stats.Total > ranks[j].Stats.Total
		}
		return ranks[i].SpeciesID < ranks[j].SpeciesID
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
