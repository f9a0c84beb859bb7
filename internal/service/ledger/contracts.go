package ledger

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища броней
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	DeleteOwned(ctx context.Context, deskID int, date civil.Date, bookedBy string) error
	ListByDateRange(ctx context.Context, from, to civil.Date) ([]*domain.Booking, error)
}

// DeskRepository интерфейс конфигурации столов
type DeskRepository interface {
	GetNumDesks(ctx context.Context) (int, error)
}

// OutcomeRecorder счетчик исходов бронирования
type OutcomeRecorder interface {
	RecordBookingOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
