package export_week

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
)

// WeekProvider источник сетки недели
type WeekProvider interface {
	Execute(ctx context.Context, req *get_week.Request) (*get_week.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
