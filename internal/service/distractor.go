package service

import (
	"math/rand"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

// selectDistractors picks up to count species from pool, excluding the
// correct one by ID. The eligible candidates are shuffled so the pick
// is a uniform random subset. A short result means the pool cannot
// supply a full question; callers requiring exactly count must treat
// that as a generation failure.
func selectDistractors(
	rng *rand.Rand,
	pool []*entities.Species,
	correct *entities.Species,
	count int,
) []*entities.Species {
	candidates := make([]*entities.Species, 0, len(pool))
	for _, s := range pool {
		if s.ID != correct.ID {
			candidates = append(candidates, s)
		}
	}

	if len(candidates) <= count {
		return candidates
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:count]
}
