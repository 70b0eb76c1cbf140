package entities

import (
	"errors"
	"time"
)

var (
	ErrNoQuestionTypes  = errors.New("at least one question type must stay enabled")
	ErrNoAnswerFormats  = errors.New("at least one answer format must stay enabled")
	ErrUnknownSetMember = errors.New("unknown question type or answer format")
)

// QuizSettings stores which question types and answer formats are
// active for a user. Both sets are guaranteed non-empty: every
// mutation goes through Toggle*, which rejects emptying a set, so the
// question generator never has to re-check.
type QuizSettings struct {
	UserID        int64
	QuestionTypes []QuestionType
	AnswerFormats []AnswerFormat
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuizSettings creates settings with every type and format enabled.
func NewQuizSettings(userID int64) *QuizSettings {
	now := time.Now()
	return &QuizSettings{
		UserID:        userID,
		QuestionTypes: append([]QuestionType(nil), AllQuestionTypes...),
		AnswerFormats: append([]AnswerFormat(nil), AllAnswerFormats...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate reports whether both enabled sets are non-empty and contain
// only known members.
func (s *QuizSettings) Validate() error {
	if len(s.QuestionTypes) == 0 {
		return ErrNoQuestionTypes
	}
	if len(s.AnswerFormats) == 0 {
		return ErrNoAnswerFormats
	}
	for _, t := range s.QuestionTypes {
		if !containsType(AllQuestionTypes, t) {
			return ErrUnknownSetMember
		}
	}
	for _, f := range s.AnswerFormats {
		if !containsFormat(AllAnswerFormats, f) {
			return ErrUnknownSetMember
		}
	}
	return nil
}

// QuestionTypeEnabled reports whether t is currently enabled.
func (s *QuizSettings) QuestionTypeEnabled(t QuestionType) bool {
	return containsType(s.QuestionTypes, t)
}

// AnswerFormatEnabled reports whether f is currently enabled.
func (s *QuizSettings) AnswerFormatEnabled(f AnswerFormat) bool {
	return containsFormat(s.AnswerFormats, f)
}

// ToggleQuestionType flips t in the enabled set. Disabling the last
// remaining type is rejected with ErrNoQuestionTypes.
func (s *QuizSettings) ToggleQuestionType(t QuestionType) error {
	if !containsType(AllQuestionTypes, t) {
		return ErrUnknownSetMember
	}
	if s.QuestionTypeEnabled(t) {
		if len(s.QuestionTypes) == 1 {
			return ErrNoQuestionTypes
		}
		s.QuestionTypes = removeType(s.QuestionTypes, t)
	} else {
		s.QuestionTypes = append(s.QuestionTypes, t)
	}
	s.UpdatedAt = time.Now()
	return nil
}

// ToggleAnswerFormat flips f in the enabled set. Disabling the last
// remaining format is rejected with ErrNoAnswerFormats.
func (s *QuizSettings) ToggleAnswerFormat(f AnswerFormat) error {
	if !containsFormat(AllAnswerFormats, f) {
		return ErrUnknownSetMember
	}
	if s.AnswerFormatEnabled(f) {
		if len(s.AnswerFormats) == 1 {
			return ErrNoAnswerFormats
		}
		s.AnswerFormats = removeFormat(s.AnswerFormats, f)
	} else {
		s.AnswerFormats = append(s.AnswerFormats, f)
	}
	s.UpdatedAt = time.Now()
	return nil
}

func containsType(list []QuestionType, t QuestionType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsFormat(list []AnswerFormat, f AnswerFormat) bool {
	for _, v := range list {
		if v == f {
			return true
		}
	}
	return false
}

func removeType(list []QuestionType, t QuestionType) []QuestionType {
	out := make([]QuestionType, 0, len(list)-1)
	for _, v := range list {
		if v != t {
			out = append(out, v)
		}
	}
	return out
}

func removeFormat(list []AnswerFormat, f AnswerFormat) []AnswerFormat {
	out := make([]AnswerFormat, 0, len(list)-1)
	for _, v := range list {
		if v != f {
			out = append(out, v)
		}
	}
	return out
}
