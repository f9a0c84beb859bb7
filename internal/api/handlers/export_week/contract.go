package export_week

import (
	"context"

	exportWeek "github.com/m04kA/SMC-DeskBookingService/internal/usecase/export_week"
)

type ExportWeekUseCase interface {
	Execute(ctx context.Context, req *exportWeek.Request) (*exportWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
