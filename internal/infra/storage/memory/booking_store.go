package memory

import (
	"context"
	"sort"
	"sync"

	"cloud.google.com/go/civil"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingStore хранилище броней в памяти.
// Проверка слота и вставка выполняются под одним мьютексом.
type BookingStore struct {
	mu       sync.Mutex
	bookings map[domain.Slot]domain.Booking

	seed   []SeedBooking
	seeded bool
}

// NewBookingStore создает пустое хранилище
func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[domain.Slot]domain.Booking),
	}
}

// NewDemoBookingStore создает хранилище, которое при первом чтении
// заполняется демо-бронями на запрошенную неделю
func NewDemoBookingStore() *BookingStore {
	s := NewBookingStore()
	s.seed = DemoBookings
	return s
}

// Create занимает слот или возвращает ErrSlotTaken
func (s *BookingStore) Create(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := b.Slot()
	if _, taken := s.bookings[slot]; taken {
		return ErrSlotTaken
	}
	s.bookings[slot] = copyBooking(b)
	return nil
}

// DeleteOwned удаляет бронь, если она принадлежит bookedBy
func (s *BookingStore) DeleteOwned(_ context.Context, deskID int, date civil.Date, bookedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := domain.Slot{DeskID: deskID, Date: date}
	existing, ok := s.bookings[slot]
	if !ok || !existing.IsOwnedBy(bookedBy) {
		return ErrBookingNotOwned
	}
	delete(s.bookings, slot)
	return nil
}

// ListByDateRange возвращает брони from <= date <= to по дате и столу
func (s *BookingStore) ListByDateRange(_ context.Context, from, to civil.Date) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applySeed(from)

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.Date.Before(from) || b.Date.After(to) {
			continue
		}
		c := copyBooking(&b)
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].DeskID < result[j].DeskID
	})

	return result, nil
}

func (s *BookingStore) applySeed(monday civil.Date) {
	if s.seed == nil || s.seeded {
		return
	}
	s.seeded = true

	for _, sb := range s.seed {
		b := domain.Booking{
			DeskID:   sb.DeskID,
			Date:     monday.AddDays(sb.DayIndex),
			BookedBy: sb.BookedBy,
		}
		if _, taken := s.bookings[b.Slot()]; !taken {
			s.bookings[b.Slot()] = b
		}
	}
}

func copyBooking(b *domain.Booking) domain.Booking {
	c := *b
	if b.Note != nil {
		note := *b.Note
		c.Note = &note
	}
	return c
}
