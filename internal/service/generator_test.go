package service

import (
	"testing"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

func TestGeneratePhotoQuestionShape(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(1))
	pool := testPool(6, 2, 2)

	for i := 0; i < 100; i++ {
		q := g.generatePhotoQuestion(pool, entities.FormatText)
		if q == nil {
			t.Fatal("expected a question from a sufficient pool")
		}

		if q.Type != entities.QuestionPhoto {
			t.Errorf("Type = %q", q.Type)
		}
		if q.MediaType != entities.MediaPhoto || q.MediaURL == "" {
			t.Errorf("prompt media = %q %q, want a photo", q.MediaType, q.MediaURL)
		}
		if len(q.Options) != 4 {
			t.Fatalf("len(Options) = %d, want 4", len(q.Options))
		}

		correct := 0
		for _, o := range q.Options {
			if o.SpeciesID == q.CorrectID {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("correct options = %d, want exactly 1", correct)
		}
	}
}

func TestGeneratePhotoQuestionNoMediaCollision(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(2))
	pool := testPool(4, 2, 0)

	for i := 0; i < 200; i++ {
		q := g.generatePhotoQuestion(pool, entities.FormatPhoto)
		if q == nil {
			t.Fatal("expected a question")
		}

		opt := q.CorrectOption()
		if opt == nil {
			t.Fatal("no correct option")
		}
		if opt.ImageURL != "" && opt.ImageURL == q.MediaURL {
			t.Fatalf("correct option reuses the prompt photo %q", q.MediaURL)
		}
	}
}

func TestGenerateAudioQuestionNoMediaCollision(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(3))
	pool := testPool(4, 0, 2)

	for i := 0; i < 200; i++ {
		q := g.generateAudioQuestion(pool, entities.FormatAudio)
		if q == nil {
			t.Fatal("expected a question")
		}
		if q.Recording == nil {
			t.Fatal("audio question without prompt recording")
		}

		opt := q.CorrectOption()
		if opt.AudioURL != "" && opt.AudioURL == q.MediaURL {
			t.Fatalf("correct option reuses the prompt audio %q", q.MediaURL)
		}
	}
}

func TestGeneratePhotoAudioQuestion(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(4))
	pool := testPool(5, 2, 2)

	q := g.generatePhotoAudioQuestion(pool, entities.FormatText)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.MediaType != entities.MediaPhoto || q.ExtraMediaType != entities.MediaAudio {
		t.Errorf("media types = %q/%q, want photo/audio", q.MediaType, q.ExtraMediaType)
	}
	if q.MediaURL == "" || q.ExtraMediaURL == "" {
		t.Error("photo-audio question must carry both prompt media")
	}
}

func TestGeneratePhotoAudioRequiresBothMedia(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(5))

	// Plenty of species, but none has photos and recordings together.
	pool := append(testPool(4, 1, 0), testPool(4, 0, 1)...)

	if q := g.generatePhotoAudioQuestion(pool, entities.FormatText); q != nil {
		t.Fatal("expected nil when no species has both photo and recording")
	}
}

func TestGenerateNameToMediaTextAlwaysNil(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(6))

	pools := [][]*entities.Species{
		testPool(4, 2, 2),
		testPool(50, 5, 5),
		testPool(3, 1, 1),
		nil,
	}
	for _, pool := range pools {
		if q := g.generateNameToMediaQuestion(pool, entities.FormatText); q != nil {
			t.Fatalf("name-to-media with text format must be nil (pool size %d)", len(pool))
		}
	}
}

func TestGenerateNameToMediaPhotoFormat(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(7))
	pool := testPool(5, 2, 0)

	q := g.generateNameToMediaQuestion(pool, entities.FormatPhoto)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.MediaURL != "" {
		t.Error("name-to-media question must not carry prompt media")
	}
	if q.Prompt == "" {
		t.Error("prompt text missing")
	}

	// Every species in the pool has photos, so no option downgrades.
	for i, o := range q.Options {
		if o.Kind != entities.OptionImageOnly {
			t.Errorf("Options[%d].Kind = %q, want image-only", i, o.Kind)
		}
	}
}

func TestGenerateTooFewEligibleSpecies(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(8))

	// Four species total but only three with photos.
	pool := testPool(3, 1, 1)
	pool = append(pool, testSpecies("photoless", 0, 1))

	if q := g.generatePhotoQuestion(pool, entities.FormatText); q != nil {
		t.Fatal("expected nil with fewer than 4 photo-capable species")
	}
}

func TestGenerateMixedDelegates(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(9))
	pool := testPool(6, 2, 2)

	sawPhoto, sawAudio := false, false
	for i := 0; i < 100; i++ {
		q := g.generateMixedQuestion(pool, entities.FormatText)
		if q == nil {
			t.Fatal("expected a question")
		}
		switch q.Type {
		case entities.QuestionPhoto:
			sawPhoto = true
		case entities.QuestionAudio:
			sawAudio = true
		default:
			t.Fatalf("unexpected delegate type %q", q.Type)
		}
	}
	if !sawPhoto || !sawAudio {
		t.Errorf("mixed delegation one-sided: photo=%v audio=%v", sawPhoto, sawAudio)
	}
}

func TestGenerateSmallPool(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(10))
	settings := entities.NewQuizSettings(1)

	if q := g.Generate(testPool(3, 2, 2), settings); q != nil {
		t.Fatal("expected nil for a pool below the 4-species floor")
	}
}

func TestGenerateRetriesTerminate(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(11))

	// No species has a recording, and only audio questions are enabled:
	// every attempt must fail and the loop must give up.
	pool := testPool(6, 2, 0)
	settings := settingsWith(
		[]entities.QuestionType{entities.QuestionAudio},
		[]entities.AnswerFormat{entities.FormatText},
	)

	if q := g.Generate(pool, settings); q != nil {
		t.Fatal("expected nil when the only enabled type is infeasible")
	}
}

func TestGenerateDeterministicSuccess(t *testing.T) {
	// Pool of 4 species with exactly 1 photo and 1 recording each,
	// photo questions with text answers only: generation can never
	// fail, regardless of the random sequence.
	pool := testPool(4, 1, 1)
	settings := settingsWith(
		[]entities.QuestionType{entities.QuestionPhoto},
		[]entities.AnswerFormat{entities.FormatText},
	)

	for seed := int64(0); seed < 50; seed++ {
		g := NewGeneratorWithRand(testRNG(seed))

		q := g.Generate(pool, settings)
		if q == nil {
			t.Fatalf("seed %d: expected success", seed)
		}
		if q.MediaType != entities.MediaPhoto {
			t.Errorf("seed %d: MediaType = %q, want photo", seed, q.MediaType)
		}
		for i, o := range q.Options {
			if o.Kind != entities.OptionText {
				t.Errorf("seed %d: Options[%d].Kind = %q, want text", seed, i, o.Kind)
			}
		}
	}
}

func TestGenerateHonorsEnabledSets(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(12))
	pool := testPool(8, 2, 2)
	settings := settingsWith(
		[]entities.QuestionType{entities.QuestionAudio},
		[]entities.AnswerFormat{entities.FormatText, entities.FormatPhoto},
	)

	for i := 0; i < 100; i++ {
		q := g.Generate(pool, settings)
		if q == nil {
			t.Fatal("expected a question")
		}
		if q.Type != entities.QuestionAudio {
			t.Fatalf("Type = %q, want audio-to-name only", q.Type)
		}
		if q.Format != entities.FormatText && q.Format != entities.FormatPhoto {
			t.Fatalf("Format = %q, not in the enabled set", q.Format)
		}
	}
}

func TestGenerateUniqueQuestionIDs(t *testing.T) {
	g := NewGeneratorWithRand(testRNG(13))
	pool := testPool(6, 2, 2)
	settings := entities.NewQuizSettings(1)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		q := g.Generate(pool, settings)
		if q == nil {
			t.Fatal("expected a question")
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}
