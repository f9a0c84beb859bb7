package update_team_member

import (
	"context"

	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

type RosterService interface {
	UpdateMember(ctx context.Context, req *rosterModels.UpdateMemberRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
