package service

import (
	"math/rand"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

// pickPhoto selects a random photo of s whose de-duplication key
// differs from excludeKey. The second return value is false when the
// species has no photos, or when the exclusion leaves nothing to pick
// from; the caller must not fall back to the excluded photo.
func pickPhoto(rng *rand.Rand, s *entities.Species, excludeKey string) (entities.Photo, bool) {
	eligible := make([]entities.Photo, 0, len(s.Photos))
	for _, p := range s.Photos {
		if excludeKey != "" && p.Key() == excludeKey {
			continue
		}
		eligible = append(eligible, p)
	}

	if len(eligible) == 0 {
		return entities.Photo{}, false
	}

	return eligible[rng.Intn(len(eligible))], true
}

// pickRecording selects a random recording of s whose audio key
// differs from excludeKey, with the same semantics as pickPhoto.
func pickRecording(rng *rand.Rand, s *entities.Species, excludeKey string) (entities.Recording, bool) {
	eligible := make([]entities.Recording, 0, len(s.Recordings))
	for _, r := range s.Recordings {
		if excludeKey != "" && r.Key() == excludeKey {
			continue
		}
		eligible = append(eligible, r)
	}

	if len(eligible) == 0 {
		return entities.Recording{}, false
	}

	return eligible[rng.Intn(len(eligible))], true
}
