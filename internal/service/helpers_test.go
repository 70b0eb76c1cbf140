package service

import (
	"fmt"
	"math/rand"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testSpecies builds a species with the given number of photos and
// recordings. Media keys are unique per species and per item.
func testSpecies(id string, photos, recordings int) *entities.Species {
	s := &entities.Species{
		ID:             id,
		CommonName:     "Common " + id,
		ScientificName: "Avis " + id,
		Region:         "New England",
	}
	for i := 0; i < photos; i++ {
		s.Photos = append(s.Photos, entities.Photo{
			URL:    fmt.Sprintf("https://img.example/%s/%d.jpg", id, i),
			Cached: fmt.Sprintf("photos/%s-%d.jpg", id, i),
		})
	}
	for i := 0; i < recordings; i++ {
		s.Recordings = append(s.Recordings, entities.Recording{
			ID:          fmt.Sprintf("XC%s%d", id, i),
			Type:        "song",
			AudioURL:    fmt.Sprintf("https://audio.example/%s/%d.mp3", id, i),
			CachedAudio: fmt.Sprintf("audio/%s-%d.mp3", id, i),
		})
	}
	return s
}

// testPool builds n species, each with the given media counts.
func testPool(n, photos, recordings int) []*entities.Species {
	pool := make([]*entities.Species, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, testSpecies(fmt.Sprintf("species-%d", i), photos, recordings))
	}
	return pool
}

func settingsWith(types []entities.QuestionType, formats []entities.AnswerFormat) *entities.QuizSettings {
	s := entities.NewQuizSettings(1)
	s.QuestionTypes = types
	s.AnswerFormats = formats
	return s
}
