package service

import (
	"testing"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

func newTestMachine(seed int64) *QuizMachine {
	gen := NewGeneratorWithRand(testRNG(seed))
	return NewQuizMachine(gen, entities.NewQuizSettings(1), entities.NewProgress(1))
}

func TestMachineLoadFlow(t *testing.T) {
	m := newTestMachine(1)
	if m.Phase() != PhaseUninitialized {
		t.Fatalf("initial phase = %q", m.Phase())
	}

	m.LoadStart()
	if m.Phase() != PhaseLoading {
		t.Fatalf("phase after LoadStart = %q", m.Phase())
	}

	m.LoadSuccess(testPool(6, 2, 2))
	if m.Phase() != PhaseQuestion {
		t.Fatalf("phase after LoadSuccess = %q", m.Phase())
	}
	if m.Question() == nil {
		t.Fatal("expected an active question")
	}
}

func TestMachineLoadSuccessEmptyPool(t *testing.T) {
	m := newTestMachine(2)
	m.LoadStart()
	m.LoadSuccess(nil)

	if m.Phase() != PhaseReady {
		t.Fatalf("phase = %q, want ready", m.Phase())
	}
	if m.Question() != nil {
		t.Fatal("empty pool must not produce a question")
	}
}

func TestMachineLoadError(t *testing.T) {
	m := newTestMachine(3)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	m.LoadError("dataset unreachable")
	if m.Phase() != PhaseError {
		t.Fatalf("phase = %q, want error", m.Phase())
	}
	if m.ErrMessage() != "dataset unreachable" {
		t.Errorf("ErrMessage = %q", m.ErrMessage())
	}
	if m.Question() != nil {
		t.Error("question must be cleared on load error")
	}
	if len(m.Species()) == 0 {
		t.Error("loaded pool must survive a load error")
	}
}

func TestMachineAnswerFlow(t *testing.T) {
	m := newTestMachine(4)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	q := m.Question()
	rec, ok := m.Answer(q.CorrectID)
	if !ok {
		t.Fatal("answer rejected")
	}
	if !rec.Correct || rec.SpeciesID != q.CorrectID {
		t.Errorf("record = %+v", rec)
	}
	if m.Phase() != PhaseAnswered || !m.Answered() || !m.WasCorrect() {
		t.Errorf("post-answer state: phase=%q answered=%v correct=%v", m.Phase(), m.Answered(), m.WasCorrect())
	}
	if m.Progress().Total != 1 || m.Progress().Correct != 1 {
		t.Errorf("progress = %d/%d, want 1/1", m.Progress().Correct, m.Progress().Total)
	}
}

func TestMachineAnswerWrong(t *testing.T) {
	m := newTestMachine(5)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	q := m.Question()
	var wrong string
	for _, o := range q.Options {
		if o.SpeciesID != q.CorrectID {
			wrong = o.SpeciesID
			break
		}
	}

	rec, ok := m.Answer(wrong)
	if !ok || rec.Correct {
		t.Fatalf("rec = %+v ok = %v", rec, ok)
	}
	if m.WasCorrect() {
		t.Error("WasCorrect on a wrong answer")
	}
	if m.SelectedID() != wrong {
		t.Errorf("SelectedID = %q, want %q", m.SelectedID(), wrong)
	}
}

func TestMachineAnswerIgnoredWhenAnswered(t *testing.T) {
	m := newTestMachine(6)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	q := m.Question()
	if _, ok := m.Answer(q.CorrectID); !ok {
		t.Fatal("first answer rejected")
	}
	if _, ok := m.Answer(q.CorrectID); ok {
		t.Fatal("second answer must be ignored")
	}
	if m.Progress().Total != 1 {
		t.Errorf("Total = %d after duplicate answer", m.Progress().Total)
	}
}

func TestMachineAnswerIgnoredWithoutQuestion(t *testing.T) {
	m := newTestMachine(7)
	if _, ok := m.Answer("anything"); ok {
		t.Fatal("answer accepted before load")
	}

	m.LoadStart()
	m.LoadSuccess(nil)
	if _, ok := m.Answer("anything"); ok {
		t.Fatal("answer accepted with no active question")
	}
}

func TestMachineNext(t *testing.T) {
	m := newTestMachine(8)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	first := m.Question()
	m.Answer(first.CorrectID)

	next := m.Next()
	if next == nil {
		t.Fatal("Next returned no question")
	}
	if next.ID == first.ID {
		t.Error("Next reused the previous question")
	}
	if m.Phase() != PhaseQuestion || m.Answered() {
		t.Errorf("post-Next state: phase=%q answered=%v", m.Phase(), m.Answered())
	}
}

func TestMachineNextIgnoredMidQuestion(t *testing.T) {
	m := newTestMachine(9)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	current := m.Question()
	if q := m.Next(); q != nil {
		t.Fatal("Next must be ignored while a question is unanswered")
	}
	if m.Question() != current {
		t.Error("active question replaced")
	}
}

func TestMachineNextFromReady(t *testing.T) {
	m := newTestMachine(10)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))
	m.Reset()

	if q := m.Next(); q == nil {
		t.Fatal("Next from ready must generate a question")
	}
}

func TestMachineUpdateSettingsRegenerates(t *testing.T) {
	m := newTestMachine(11)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	first := m.Question()
	audioOnly := settingsWith(
		[]entities.QuestionType{entities.QuestionAudio},
		[]entities.AnswerFormat{entities.FormatText},
	)
	m.UpdateSettings(audioOnly)

	q := m.Question()
	if q == nil {
		t.Fatal("regeneration produced no question")
	}
	if q.ID == first.ID {
		t.Error("active question survived a settings change")
	}
	if q.Type != entities.QuestionAudio {
		t.Errorf("Type = %q, want audio-to-name", q.Type)
	}
}

func TestMachineUpdateSettingsDeferredWhenAnswered(t *testing.T) {
	m := newTestMachine(12)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))

	q := m.Question()
	m.Answer(q.CorrectID)

	m.UpdateSettings(settingsWith(
		[]entities.QuestionType{entities.QuestionAudio},
		[]entities.AnswerFormat{entities.FormatText},
	))
	if m.Question() != q {
		t.Error("answered question must stay until Next")
	}
	if m.Phase() != PhaseAnswered {
		t.Errorf("phase = %q", m.Phase())
	}
}

func TestMachineResetIdempotent(t *testing.T) {
	m := newTestMachine(13)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))
	m.Answer(m.Question().CorrectID)

	m.Reset()
	m.Reset()

	if m.Phase() != PhaseReady {
		t.Fatalf("phase = %q, want ready", m.Phase())
	}
	if m.Question() != nil || m.Answered() {
		t.Error("question state not cleared")
	}
	if len(m.Species()) == 0 {
		t.Error("species pool must survive a reset")
	}
	if m.Progress().Total != 1 {
		t.Errorf("progress lost on reset: Total = %d", m.Progress().Total)
	}
}

func TestMachineResetIgnoredBeforeLoad(t *testing.T) {
	m := newTestMachine(14)
	m.Reset()
	if m.Phase() != PhaseUninitialized {
		t.Fatalf("phase = %q, reset must not apply before load", m.Phase())
	}
}

func TestMachineSetProgress(t *testing.T) {
	m := newTestMachine(15)
	m.LoadStart()
	m.LoadSuccess(testPool(6, 2, 2))
	m.Answer(m.Question().CorrectID)

	m.SetProgress(entities.NewProgress(1))
	if m.Progress().Total != 0 {
		t.Errorf("Total = %d after progress replacement", m.Progress().Total)
	}
}
