// Package storage holds in-memory per-chat session state.
package storage

import (
	"sync"

	"github.com/myra/bird-quiz-bot/internal/service"
)

// Sessions maps chat IDs to their quiz machines. Access is serialized
// so each chat behaves as an independent single-threaded session.
type Sessions struct {
	mu       sync.Mutex
	machines map[int64]*service.QuizMachine
}

func NewSessions() *Sessions {
	return &Sessions{
		machines: make(map[int64]*service.QuizMachine),
	}
}

// Get returns the machine for a chat, or nil if none was created yet.
func (s *Sessions) Get(chatID int64) *service.QuizMachine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machines[chatID]
}

// GetOrCreate returns the chat's machine, creating it via factory on
// first use. The factory runs under the lock, so two updates for the
// same chat cannot both create a machine.
func (s *Sessions) GetOrCreate(chatID int64, factory func() (*service.QuizMachine, error)) (*service.QuizMachine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.machines[chatID]; ok {
		return m, nil
	}

	m, err := factory()
	if err != nil {
		return nil, err
	}
	s.machines[chatID] = m
	return m, nil
}

// Delete removes the chat's machine.
func (s *Sessions) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, chatID)
}
