package weekcache

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingRepository оборачиваемое хранилище броней
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	DeleteOwned(ctx context.Context, deskID int, date civil.Date, bookedBy string) error
	ListByDateRange(ctx context.Context, from, to civil.Date) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
