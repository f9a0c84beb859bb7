package get_admin_config

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

type RosterService interface {
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
	GetDeskConfig(ctx context.Context) (*rosterModels.DeskConfig, error)
	IsDemo() bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
