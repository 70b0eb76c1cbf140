package entities

import (
	"math"
	"time"
)

// RollingWindowSize is the fixed capacity of the recent-answers buffer.
const RollingWindowSize = 20

// AnswerRecord is one entry of the rolling window.
type AnswerRecord struct {
	SpeciesID    string       `json:"speciesId"`
	Correct      bool         `json:"correct"`
	QuestionType QuestionType `json:"questionType"`
	AnswerFormat AnswerFormat `json:"answerFormat"`
	AnsweredAt   time.Time    `json:"answeredAt"`
}

// SpeciesStats holds per-species answer counters.
type SpeciesStats struct {
	Total      int       `json:"total"`
	Correct    int       `json:"correct"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// Accuracy returns the per-species accuracy percentage.
func (s SpeciesStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// Progress accumulates a user's quiz performance: all-time totals, a
// fixed-capacity rolling window of the most recent answers, streak
// counters, and per-species stats.
//
// Progress is updated by value: WithAnswer returns a new independent
// Progress, so a half-applied update is never observable and a failed
// persistence write leaves the previous value intact.
type Progress struct {
	UserID       int64                   `json:"-"`
	Total        int                     `json:"total"`
	Correct      int                     `json:"correct"`
	Accuracy     int                     `json:"accuracy"` // rounded percentage
	LastPlayedAt time.Time               `json:"lastPlayedAt"`
	Recent       []AnswerRecord          `json:"recent"` // FIFO, at most RollingWindowSize
	Streak       int                     `json:"streak"`
	MaxStreak    int                     `json:"maxStreak"`
	BySpecies    map[string]SpeciesStats `json:"bySpecies"`
}

// NewProgress creates empty progress for a user.
func NewProgress(userID int64) Progress {
	return Progress{
		UserID:    userID,
		Recent:    make([]AnswerRecord, 0, RollingWindowSize),
		BySpecies: make(map[string]SpeciesStats),
	}
}

// WithAnswer returns a copy of p updated with one answered question.
func (p Progress) WithAnswer(rec AnswerRecord) Progress {
	next := p.clone()

	next.Total++
	if rec.Correct {
		next.Correct++
		next.Streak++
		if next.Streak > next.MaxStreak {
			next.MaxStreak = next.Streak
		}
	} else {
		next.Streak = 0
	}
	next.Accuracy = int(math.Round(float64(next.Correct) / float64(next.Total) * 100))
	next.LastPlayedAt = rec.AnsweredAt

	next.Recent = append(next.Recent, rec)
	if len(next.Recent) > RollingWindowSize {
		next.Recent = next.Recent[len(next.Recent)-RollingWindowSize:]
	}

	st := next.BySpecies[rec.SpeciesID]
	st.Total++
	if rec.Correct {
		st.Correct++
	}
	st.LastSeenAt = rec.AnsweredAt
	next.BySpecies[rec.SpeciesID] = st

	return next
}

// RollingAccuracy returns the accuracy percentage over the rolling
// window, rounded like the all-time accuracy.
func (p Progress) RollingAccuracy() int {
	if len(p.Recent) == 0 {
		return 0
	}
	correct := 0
	for _, r := range p.Recent {
		if r.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(p.Recent)) * 100))
}

func (p Progress) clone() Progress {
	next := p
	next.Recent = append(make([]AnswerRecord, 0, len(p.Recent)+1), p.Recent...)
	next.BySpecies = make(map[string]SpeciesStats, len(p.BySpecies)+1)
	for id, st := range p.BySpecies {
		next.BySpecies[id] = st
	}
	return next
}
