package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

const (
	// distractorCount is the number of wrong options per question.
	distractorCount = 3

	// minPoolSize is the hard floor for generating any question.
	minPoolSize = distractorCount + 1

	// maxGenerateAttempts bounds the orchestrator's retry loop. Each
	// attempt re-rolls the (type, format) pair, so a combination that
	// is structurally infeasible for the pool does not eat every try.
	maxGenerateAttempts = 10
)

// Prompt texts.
const (
	promptWhatBird       = "What bird is this?"
	promptWhichSound     = "Which bird makes this sound?"
	promptWhichPhoto     = "Which photo shows the %s?"
	promptWhichRecording = "Which recording is the %s?"
	promptWhichOfThese   = "Which of these is the %s?"
)

// Generator produces quiz questions from a species pool. The random
// source is injected so tests can supply deterministic sequences; the
// zero-argument constructor seeds from the clock like the rest of the
// application.
type Generator struct {
	rng *rand.Rand
	seq int
}

// NewGenerator creates a Generator with a time-seeded random source.
func NewGenerator() *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithRand creates a Generator using the given random source.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate picks a question type and answer format from the enabled
// sets and builds a question, retrying with a freshly randomized pair
// on failure. It returns nil when the pool has fewer than four species
// or when every attempt fails; the caller surfaces that as "no
// question available" rather than an error.
func (g *Generator) Generate(pool []*entities.Species, settings *entities.QuizSettings) *entities.Question {
	if len(pool) < minPoolSize {
		return nil
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		qt := settings.QuestionTypes[g.rng.Intn(len(settings.QuestionTypes))]
		af := settings.AnswerFormats[g.rng.Intn(len(settings.AnswerFormats))]

		if q := g.generate(pool, qt, af); q != nil {
			return q
		}
	}

	return nil
}

// generate dispatches to the generator for one question type.
func (g *Generator) generate(pool []*entities.Species, qt entities.QuestionType, af entities.AnswerFormat) *entities.Question {
	switch qt {
	case entities.QuestionPhoto:
		return g.generatePhotoQuestion(pool, af)
	case entities.QuestionAudio:
		return g.generateAudioQuestion(pool, af)
	case entities.QuestionPhotoAudio:
		return g.generatePhotoAudioQuestion(pool, af)
	case entities.QuestionNameMedia:
		return g.generateNameToMediaQuestion(pool, af)
	case entities.QuestionMixed:
		return g.generateMixedQuestion(pool, af)
	default:
		return nil
	}
}

// generatePhotoQuestion shows a photo of the correct species and asks
// for its name. The prompt photo is excluded from the correct option's
// media so the answer never repeats the question image.
func (g *Generator) generatePhotoQuestion(pool []*entities.Species, af entities.AnswerFormat) *entities.Question {
	eligible := filterSpecies(pool, (*entities.Species).HasPhotos)
	if len(eligible) < minPoolSize {
		return nil
	}

	correct := eligible[g.rng.Intn(len(eligible))]
	photo, ok := pickPhoto(g.rng, correct, "")
	if !ok {
		return nil
	}

	distractors := selectDistractors(g.rng, eligible, correct, distractorCount)
	if len(distractors) < distractorCount {
		return nil
	}

	excl := exclusions{correctID: correct.ID, photoKey: photo.Key()}

	return &entities.Question{
		ID:        g.nextID(entities.QuestionPhoto),
		Type:      entities.QuestionPhoto,
		Format:    af,
		Species:   correct,
		Prompt:    promptWhatBird,
		CorrectID: correct.ID,
		Options:   buildOptions(g.rng, correct, distractors, af, excl),
		MediaURL:  photo.Key(),
		MediaType: entities.MediaPhoto,
	}
}

// generateAudioQuestion plays a recording of the correct species and
// asks for its name.
func (g *Generator) generateAudioQuestion(pool []*entities.Species, af entities.AnswerFormat) *entities.Question {
	eligible := filterSpecies(pool, (*entities.Species).HasRecordings)
	if len(eligible) < minPoolSize {
		return nil
	}

	correct := eligible[g.rng.Intn(len(eligible))]
	rec, ok := pickRecording(g.rng, correct, "")
	if !ok {
		return nil
	}

	distractors := selectDistractors(g.rng, eligible, correct, distractorCount)
	if len(distractors) < distractorCount {
		return nil
	}

	excl := exclusions{correctID: correct.ID, audioKey: rec.Key()}

	return &entities.Question{
		ID:        g.nextID(entities.QuestionAudio),
		Type:      entities.QuestionAudio,
		Format:    af,
		Species:   correct,
		Recording: &rec,
		Prompt:    promptWhichSound,
		CorrectID: correct.ID,
		Options:   buildOptions(g.rng, correct, distractors, af, excl),
		MediaURL:  rec.Key(),
		MediaType: entities.MediaAudio,
	}
}

// generatePhotoAudioQuestion shows a photo and plays a recording of
// the correct species together. Both prompt media keys are excluded
// from the correct option.
func (g *Generator) generatePhotoAudioQuestion(pool []*entities.Species, af entities.AnswerFormat) *entities.Question {
	eligible := filterSpecies(pool, func(s *entities.Species) bool {
		return s.HasPhotos() && s.HasRecordings()
	})
	if len(eligible) < minPoolSize {
		return nil
	}

	correct := eligible[g.rng.Intn(len(eligible))]
	photo, okP := pickPhoto(g.rng, correct, "")
	rec, okR := pickRecording(g.rng, correct, "")
	if !okP || !okR {
		return nil
	}

	distractors := selectDistractors(g.rng, eligible, correct, distractorCount)
	if len(distractors) < distractorCount {
		return nil
	}

	excl := exclusions{correctID: correct.ID, photoKey: photo.Key(), audioKey: rec.Key()}

	return &entities.Question{
		ID:             g.nextID(entities.QuestionPhotoAudio),
		Type:           entities.QuestionPhotoAudio,
		Format:         af,
		Species:        correct,
		Recording:      &rec,
		Prompt:         promptWhatBird,
		CorrectID:      correct.ID,
		Options:        buildOptions(g.rng, correct, distractors, af, excl),
		MediaURL:       photo.Key(),
		MediaType:      entities.MediaPhoto,
		ExtraMediaURL:  rec.Key(),
		ExtraMediaType: entities.MediaAudio,
	}
}

// generateNameToMediaQuestion shows the species name as the prompt and
// asks which media belongs to it. With a text answer format the
// question would ask to match a name against names, so that pairing is
// rejected unconditionally. There is no prompt media, hence no
// exclusions.
func (g *Generator) generateNameToMediaQuestion(pool []*entities.Species, af entities.AnswerFormat) *entities.Question {
	if af == entities.FormatText {
		return nil
	}

	var eligible []*entities.Species
	switch af {
	case entities.FormatPhoto:
		eligible = filterSpecies(pool, (*entities.Species).HasPhotos)
	case entities.FormatAudio:
		eligible = filterSpecies(pool, (*entities.Species).HasRecordings)
	default:
		eligible = pool
	}
	if len(eligible) < minPoolSize {
		return nil
	}

	correct := eligible[g.rng.Intn(len(eligible))]
	distractors := selectDistractors(g.rng, eligible, correct, distractorCount)
	if len(distractors) < distractorCount {
		return nil
	}

	var prompt string
	switch af {
	case entities.FormatPhoto:
		prompt = fmt.Sprintf(promptWhichPhoto, correct.CommonName)
	case entities.FormatAudio:
		prompt = fmt.Sprintf(promptWhichRecording, correct.CommonName)
	default:
		prompt = fmt.Sprintf(promptWhichOfThese, correct.CommonName)
	}

	return &entities.Question{
		ID:        g.nextID(entities.QuestionNameMedia),
		Type:      entities.QuestionNameMedia,
		Format:    af,
		Species:   correct,
		Prompt:    prompt,
		CorrectID: correct.ID,
		Options:   buildOptions(g.rng, correct, distractors, af, exclusions{}),
	}
}

// generateMixedQuestion delegates randomly to the photo or audio
// question generator. The produced question keeps the delegate's type
// tag so rendering does not need a separate branch.
func (g *Generator) generateMixedQuestion(pool []*entities.Species, af entities.AnswerFormat) *entities.Question {
	if g.rng.Intn(2) == 0 {
		return g.generatePhotoQuestion(pool, af)
	}
	return g.generateAudioQuestion(pool, af)
}

func (g *Generator) nextID(qt entities.QuestionType) string {
	g.seq++
	return fmt.Sprintf("%s-%d", qt, g.seq)
}

func filterSpecies(pool []*entities.Species, keep func(*entities.Species) bool) []*entities.Species {
	out := make([]*entities.Species, 0, len(pool))
	for _, s := range pool {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
