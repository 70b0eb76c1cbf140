package entities

// QuestionType identifies which modality combination forms the question prompt.
type QuestionType string

const (
	QuestionPhoto      QuestionType = "photo-to-name"       // show a photo, ask for the name
	QuestionAudio      QuestionType = "audio-to-name"       // play a recording, ask for the name
	QuestionPhotoAudio QuestionType = "photo-audio-to-name" // photo and recording together
	QuestionNameMedia  QuestionType = "name-to-media"       // show the name, ask for the matching media
	QuestionMixed      QuestionType = "mixed"               // randomly photo-to-name or audio-to-name
)

// AllQuestionTypes lists every supported question type.
var AllQuestionTypes = []QuestionType{
	QuestionPhoto,
	QuestionAudio,
	QuestionPhotoAudio,
	QuestionNameMedia,
	QuestionMixed,
}

// AnswerFormat identifies the presentation style requested for the answer options.
type AnswerFormat string

const (
	FormatText  AnswerFormat = "text"  // species names only
	FormatPhoto AnswerFormat = "photo" // photos, name hidden until answered
	FormatAudio AnswerFormat = "audio" // recordings, name hidden until answered
	FormatMixed AnswerFormat = "mixed" // each option gets an independent random style
)

// AllAnswerFormats lists every supported answer format.
var AllAnswerFormats = []AnswerFormat{
	FormatText,
	FormatPhoto,
	FormatAudio,
	FormatMixed,
}

// MediaKind distinguishes prompt media attached to a question.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaAudio MediaKind = "audio"
)

// OptionKind is the resolved display style of a single answer option.
// A richer kind may be downgraded to OptionText when the species lacks
// the required media.
type OptionKind string

const (
	OptionText      OptionKind = "text"
	OptionTextImage OptionKind = "text-image"
	OptionImageOnly OptionKind = "image-only"
	OptionAudioOnly OptionKind = "audio-only"
)

// Option is one of the four answer choices of a question. Options are
// built through the kind-specific constructors below so that an option
// never carries media that does not match its kind.
type Option struct {
	SpeciesID string     // identity of the species this option stands for
	Kind      OptionKind // resolved display style
	Label     string     // common name; shown or hidden per HideLabel
	ImageURL  string     // set only for text-image and image-only
	AudioURL  string     // set only for audio-only
	HideLabel bool       // reveal the label only after answering
}

// NewTextOption builds a plain text option. It always succeeds.
func NewTextOption(s *Species) Option {
	return Option{
		SpeciesID: s.ID,
		Kind:      OptionText,
		Label:     s.CommonName,
	}
}

// NewTextImageOption builds an option showing both name and photo.
func NewTextImageOption(s *Species, p Photo) Option {
	return Option{
		SpeciesID: s.ID,
		Kind:      OptionTextImage,
		Label:     s.CommonName,
		ImageURL:  p.Key(),
	}
}

// NewImageOption builds a photo-only option with the label hidden.
func NewImageOption(s *Species, p Photo) Option {
	return Option{
		SpeciesID: s.ID,
		Kind:      OptionImageOnly,
		Label:     s.CommonName,
		ImageURL:  p.Key(),
		HideLabel: true,
	}
}

// NewAudioOption builds an audio-only option with the label hidden.
func NewAudioOption(s *Species, r Recording) Option {
	return Option{
		SpeciesID: s.ID,
		Kind:      OptionAudioOnly,
		Label:     s.CommonName,
		AudioURL:  r.Key(),
		HideLabel: true,
	}
}

// Question is a single generated quiz question. Questions are built by
// the generators, consumed read-only, and discarded on advancing.
type Question struct {
	ID        string
	Type      QuestionType
	Format    AnswerFormat
	Species   *Species   // the correct species, shared read-only
	Recording *Recording // prompt recording, if the prompt plays audio
	Prompt    string     // human-readable question text
	CorrectID string     // = Species.ID
	Options   []Option   // exactly 4, order randomized

	// Prompt media. MediaURL/MediaType carry the primary prompt item;
	// the Extra pair is set only for photo-audio-to-name questions.
	MediaURL       string
	MediaType      MediaKind
	ExtraMediaURL  string
	ExtraMediaType MediaKind
}

// CorrectOption returns the option matching the correct species.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].SpeciesID == q.CorrectID {
			return &q.Options[i]
		}
	}
	return nil
}
