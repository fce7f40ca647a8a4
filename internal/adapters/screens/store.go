package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/randomtoy/quantum-roll/internal/domain"
)

// MemoryStore keeps screens in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu      sync.Mutex
	screens map[string]domain.Screen
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{screens: make(map[string]domain.Screen)}
}

func (s *MemoryStore) Create(_ context.Context, scr domain.Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screens[scr.ID]; ok {
		return fmt.Errorf("screen %s already exists", scr.ID)
	}
	s.screens[scr.ID] = scr
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scr, ok := s.screens[id]
	if !ok {
		return domain.Screen{}, domain.ErrScreenNotFound
	}
	return scr, nil
}

// Update runs fn against a copy of the screen and stores the copy only when
// fn succeeds.
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Screen) error) (domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scr, ok := s.screens[id]
	if !ok {
		return domain.Screen{}, domain.ErrScreenNotFound
	}
	if err := fn(&scr); err != nil {
		return s.screens[id], err
	}
	s.screens[id] = scr
	return scr, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screens[id]; !ok {
		return domain.ErrScreenNotFound
	}
	delete(s.screens, id)
	return nil
}

// Len reports how many screens are open.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.screens)
}
