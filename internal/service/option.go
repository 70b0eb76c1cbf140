package service

import (
	"math/rand"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

// exclusions carries the prompt media keys the correct species' option
// must not reuse. Distractor species are different organisms, so their
// media can never equal the prompt's at the identifier level and no
// exclusion applies to them.
type exclusions struct {
	correctID string
	photoKey  string
	audioKey  string
}

func (e exclusions) photoFor(speciesID string) string {
	if speciesID == e.correctID {
		return e.photoKey
	}
	return ""
}

func (e exclusions) audioFor(speciesID string) string {
	if speciesID == e.correctID {
		return e.audioKey
	}
	return ""
}

// buildOption constructs one answer option of the requested kind,
// downgrading to plain text when the species cannot supply the media
// after exclusion. A question always renders four options; richness
// degrades per option instead of failing the question.
func buildOption(
	rng *rand.Rand,
	s *entities.Species,
	kind entities.OptionKind,
	excl exclusions,
) entities.Option {
	switch kind {
	case entities.OptionTextImage:
		if p, ok := pickPhoto(rng, s, excl.photoFor(s.ID)); ok {
			return entities.NewTextImageOption(s, p)
		}
	case entities.OptionImageOnly:
		if p, ok := pickPhoto(rng, s, excl.photoFor(s.ID)); ok {
			return entities.NewImageOption(s, p)
		}
	case entities.OptionAudioOnly:
		if r, ok := pickRecording(rng, s, excl.audioFor(s.ID)); ok {
			return entities.NewAudioOption(s, r)
		}
	}
	return entities.NewTextOption(s)
}

// optionKindFor maps an answer format to the option kind to request.
// For the mixed format every option draws its own kind independently.
func optionKindFor(rng *rand.Rand, format entities.AnswerFormat) entities.OptionKind {
	switch format {
	case entities.FormatPhoto:
		return entities.OptionImageOnly
	case entities.FormatAudio:
		return entities.OptionAudioOnly
	case entities.FormatMixed:
		kinds := []entities.OptionKind{
			entities.OptionText,
			entities.OptionTextImage,
			entities.OptionImageOnly,
			entities.OptionAudioOnly,
		}
		return kinds[rng.Intn(len(kinds))]
	default:
		return entities.OptionText
	}
}

// buildOptions assembles the shuffled option list: the correct species
// plus its distractors, each resolved through buildOption.
func buildOptions(
	rng *rand.Rand,
	correct *entities.Species,
	distractors []*entities.Species,
	format entities.AnswerFormat,
	excl exclusions,
) []entities.Option {
	species := make([]*entities.Species, 0, 1+len(distractors))
	species = append(species, correct)
	species = append(species, distractors...)

	options := make([]entities.Option, 0, len(species))
	for _, s := range species {
		options = append(options, buildOption(rng, s, optionKindFor(rng, format), excl))
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}
