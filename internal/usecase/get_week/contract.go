package get_week

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

// LedgerService интерфейс журнала броней
type LedgerService interface {
	WeekBookings(ctx context.Context, tzOffsetMinutes *float64) (domain.WorkWeek, []*domain.Booking, error)
}

// RosterService интерфейс состава команды и столов
type RosterService interface {
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
	GetDeskConfig(ctx context.Context) (*rosterModels.DeskConfig, error)
	IsDemo() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
