package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// TeamStore участники команды в памяти
type TeamStore struct {
	mu      sync.RWMutex
	members []domain.TeamMember
	nextID  int64
}

// NewTeamStore создает хранилище с заданными участниками
func NewTeamStore(members ...domain.TeamMember) *TeamStore {
	s := &TeamStore{nextID: 1}
	for _, m := range members {
		s.members = append(s.members, m)
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
	}
	return s
}

func (s *TeamStore) List(_ context.Context) ([]*domain.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.TeamMember, 0, len(s.members))
	for _, m := range s.members {
		m := m
		result = append(result, &m)
	}
	return result, nil
}

func (s *TeamStore) Create(_ context.Context, name string, desiredDays int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.members = append(s.members, domain.TeamMember{ID: id, Name: name, DesiredDays: desiredDays})
	return id, nil
}

func (s *TeamStore) Update(_ context.Context, id int64, update domain.TeamMemberUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrMemberNotFound
	}
	if update.Name != nil {
		s.members[i].Name = *update.Name
	}
	if update.DesiredDays != nil {
		s.members[i].DesiredDays = *update.DesiredDays
	}
	return nil
}

func (s *TeamStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrMemberNotFound
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	return nil
}

func (s *TeamStore) indexOf(id int64) int {
	for i, m := range s.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
