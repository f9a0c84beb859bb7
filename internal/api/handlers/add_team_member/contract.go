package add_team_member

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

type RosterService interface {
	AddMember(ctx context.Context, req *rosterModels.AddMemberRequest) (int64, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
