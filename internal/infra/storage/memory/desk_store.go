package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// DeskStore конфигурация столов в памяти
type DeskStore struct {
	mu       sync.RWMutex
	numDesks int
	desks    map[int]string
}

// NewDeskStore создает конфигурацию с numDesks столами без сохраненных имен
func NewDeskStore(numDesks int) *DeskStore {
	return &DeskStore{
		numDesks: domain.ClampNumDesks(numDesks),
		desks:    make(map[int]string),
	}
}

func (s *DeskStore) GetNumDesks(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numDesks, nil
}

func (s *DeskStore) ListDesks(_ context.Context) ([]domain.Desk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	desks := make([]domain.Desk, 0, len(s.desks))
	for id, name := range s.desks {
		desks = append(desks, domain.Desk{ID: id, Name: name})
	}
	sort.Slice(desks, func(i, j int) bool { return desks[i].ID < desks[j].ID })
	return desks, nil
}

func (s *DeskStore) SetDesks(_ context.Context, numDesks int, desks []domain.Desk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.numDesks = numDesks
	for _, d := range desks {
		s.desks[d.ID] = d.Name
	}
	return nil
}
