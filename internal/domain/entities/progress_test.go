package entities

import (
	"fmt"
	"testing"
	"time"
)

func record(speciesID string, correct bool) AnswerRecord {
	return AnswerRecord{
		SpeciesID:    speciesID,
		Correct:      correct,
		QuestionType: QuestionPhoto,
		AnswerFormat: FormatText,
		AnsweredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWithAnswerTotals(t *testing.T) {
	p := NewProgress(1)

	p = p.WithAnswer(record("cardinal", true))
	p = p.WithAnswer(record("blue-jay", true))
	p = p.WithAnswer(record("cardinal", false))

	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
	if p.Correct != 2 {
		t.Errorf("Correct = %d, want 2", p.Correct)
	}
	if p.Accuracy != 67 {
		t.Errorf("Accuracy = %d, want 67", p.Accuracy)
	}

	st := p.BySpecies["cardinal"]
	if st.Total != 2 || st.Correct != 1 {
		t.Errorf("cardinal stats = %d/%d, want 1/2", st.Correct, st.Total)
	}
}

func TestWithAnswerRollingWindow(t *testing.T) {
	p := NewProgress(1)

	for i := 1; i <= 25; i++ {
		p = p.WithAnswer(record(fmt.Sprintf("species-%d", i), true))
	}

	if len(p.Recent) != RollingWindowSize {
		t.Fatalf("len(Recent) = %d, want %d", len(p.Recent), RollingWindowSize)
	}

	// The buffer must hold answers #6 through #25 in original order.
	for i, rec := range p.Recent {
		want := fmt.Sprintf("species-%d", i+6)
		if rec.SpeciesID != want {
			t.Errorf("Recent[%d].SpeciesID = %q, want %q", i, rec.SpeciesID, want)
		}
	}
}

func TestWithAnswerStreaks(t *testing.T) {
	p := NewProgress(1)

	for _, correct := range []bool{true, true, false, true} {
		p = p.WithAnswer(record("cardinal", correct))
	}

	if p.Streak != 1 {
		t.Errorf("Streak = %d, want 1", p.Streak)
	}
	if p.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", p.MaxStreak)
	}
}

func TestWithAnswerDoesNotMutateReceiver(t *testing.T) {
	p := NewProgress(1)
	p = p.WithAnswer(record("cardinal", true))

	before := p
	beforeCardinal := p.BySpecies["cardinal"]

	_ = p.WithAnswer(record("cardinal", false))

	if p.Total != before.Total || p.Streak != before.Streak {
		t.Error("WithAnswer mutated the receiver's counters")
	}
	if len(p.Recent) != 1 {
		t.Errorf("len(Recent) = %d, want 1", len(p.Recent))
	}
	if p.BySpecies["cardinal"] != beforeCardinal {
		t.Error("WithAnswer mutated the receiver's species stats")
	}
}

func TestRollingAccuracy(t *testing.T) {
	p := NewProgress(1)
	if got := p.RollingAccuracy(); got != 0 {
		t.Errorf("empty RollingAccuracy = %d, want 0", got)
	}

	for _, correct := range []bool{true, true, true, false} {
		p = p.WithAnswer(record("cardinal", correct))
	}

	if got := p.RollingAccuracy(); got != 75 {
		t.Errorf("RollingAccuracy = %d, want 75", got)
	}
}
