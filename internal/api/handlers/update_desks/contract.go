package update_desks

import (
	"context"

	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

type RosterService interface {
	SetDesks(ctx context.Context, req *rosterModels.SetDesksRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
