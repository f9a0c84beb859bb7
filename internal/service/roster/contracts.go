package roster

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// TeamRepository интерфейс хранилища участников
type TeamRepository interface {
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Create(ctx context.Context, name string, desiredDays int) (int64, error)
	Update(ctx context.Context, id int64, update domain.TeamMemberUpdate) error
	Delete(ctx context.Context, id int64) error
}

// DeskRepository интерфейс конфигурации столов
type DeskRepository interface {
	GetNumDesks(ctx context.Context) (int, error)
	ListDesks(ctx context.Context) ([]domain.Desk, error)
	SetDesks(ctx context.Context, numDesks int, desks []domain.Desk) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
