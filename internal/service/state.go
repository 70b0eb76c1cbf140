package service

import (
	"time"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

// QuizPhase is the state of a quiz session.
type QuizPhase string

const (
	PhaseUninitialized QuizPhase = "uninitialized"
	PhaseLoading       QuizPhase = "loading"
	PhaseReady         QuizPhase = "ready"    // species loaded, no active question
	PhaseQuestion      QuizPhase = "question" // question shown, awaiting answer
	PhaseAnswered      QuizPhase = "answered" // answer recorded, awaiting advance
	PhaseError         QuizPhase = "error"    // dataset load failed
)

// QuizMachine drives one user's quiz session: it owns the current
// question, the answered/selected state, the active settings and the
// in-memory progress. All methods are synchronous and run to
// completion; a session is single-user, so no locking happens here
// (the session store serializes access per chat).
type QuizMachine struct {
	gen      *Generator
	phase    QuizPhase
	species  []*entities.Species
	settings *entities.QuizSettings
	progress entities.Progress

	question   *entities.Question
	answered   bool
	selectedID string
	wasCorrect bool
	errMsg     string

	now func() time.Time
}

// NewQuizMachine creates an uninitialized machine with the given
// generator, settings and previously loaded progress.
func NewQuizMachine(gen *Generator, settings *entities.QuizSettings, progress entities.Progress) *QuizMachine {
	return &QuizMachine{
		gen:      gen,
		phase:    PhaseUninitialized,
		settings: settings,
		progress: progress,
		now:      time.Now,
	}
}

func (m *QuizMachine) Phase() QuizPhase { return m.phase }
func (m *QuizMachine) Question() *entities.Question { return m.question }
func (m *QuizMachine) Answered() bool { return m.answered }
func (m *QuizMachine) SelectedID() string { return m.selectedID }
func (m *QuizMachine) WasCorrect() bool { return m.wasCorrect }
func (m *QuizMachine) Settings() *entities.QuizSettings { return m.settings }
func (m *QuizMachine) Progress() entities.Progress { return m.progress }
func (m *QuizMachine) Species() []*entities.Species { return m.species }
func (m *QuizMachine) ErrMessage() string { return m.errMsg }

// LoadStart marks the dataset load as in flight.
func (m *QuizMachine) LoadStart() {
	m.phase = PhaseLoading
	m.errMsg = ""
}

// LoadSuccess stores the species pool. A non-empty pool immediately
// generates the first question; an empty one leaves the machine Ready
// with no question.
func (m *QuizMachine) LoadSuccess(species []*entities.Species) {
	m.species = species
	m.errMsg = ""

	if len(species) == 0 {
		m.phase = PhaseReady
		return
	}

	m.startQuestion(m.gen.Generate(m.species, m.settings))
}

// LoadError puts the machine into the error state. A previously loaded
// pool is kept so a reload can recover.
func (m *QuizMachine) LoadError(msg string) {
	m.phase = PhaseError
	m.errMsg = msg
	m.clearQuestion()
}

// Answer records the selected option. It is a no-op outside the active
// question phase and when the question was already answered. The
// returned record is what was appended to progress, for the caller to
// persist; ok is false when the event was ignored.
func (m *QuizMachine) Answer(optionID string) (rec entities.AnswerRecord, ok bool) {
	if m.phase != PhaseQuestion || m.answered || m.question == nil {
		return entities.AnswerRecord{}, false
	}

	m.answered = true
	m.selectedID = optionID
	m.wasCorrect = optionID == m.question.CorrectID
	m.phase = PhaseAnswered

	rec = entities.AnswerRecord{
		SpeciesID:    m.question.CorrectID,
		Correct:      m.wasCorrect,
		QuestionType: m.question.Type,
		AnswerFormat: m.question.Format,
		AnsweredAt:   m.now(),
	}
	m.progress = m.progress.WithAnswer(rec)

	return rec, true
}

// Next advances to a freshly generated question. It is valid after an
// answer, and also from Ready so a user can retry after a generation
// failure. When generation fails the machine exposes "no question
// available" (Ready, nil question) instead of keeping stale state.
func (m *QuizMachine) Next() *entities.Question {
	if m.phase != PhaseAnswered && m.phase != PhaseReady {
		return nil
	}

	m.startQuestion(m.gen.Generate(m.species, m.settings))
	return m.question
}

// UpdateSettings replaces the active settings. A currently active,
// unanswered question is regenerated immediately under the new
// settings; settings changes are not deferred to the next question.
func (m *QuizMachine) UpdateSettings(settings *entities.QuizSettings) {
	m.settings = settings

	if m.phase == PhaseQuestion {
		m.startQuestion(m.gen.Generate(m.species, m.settings))
	}
}

// Reset clears the question and answer state while keeping the loaded
// species and the accumulated progress. Calling it twice is the same
// as calling it once.
func (m *QuizMachine) Reset() {
	if m.phase == PhaseUninitialized || m.phase == PhaseLoading || m.phase == PhaseError {
		return
	}
	m.phase = PhaseReady
	m.clearQuestion()
}

// SetProgress replaces the in-memory progress, e.g. after an explicit
// progress reset.
func (m *QuizMachine) SetProgress(p entities.Progress) {
	m.progress = p
}

func (m *QuizMachine) startQuestion(q *entities.Question) {
	m.clearQuestion()
	m.question = q
	if q != nil {
		m.phase = PhaseQuestion
	} else {
		m.phase = PhaseReady
	}
}

func (m *QuizMachine) clearQuestion() {
	m.question = nil
	m.answered = false
	m.selectedID = ""
	m.wasCorrect = false
}
