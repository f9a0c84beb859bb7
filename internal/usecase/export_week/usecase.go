package export_week

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
)

// UseCase use case выгрузки недели в XLSX
type UseCase struct {
	weeks  WeekProvider
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(weeks WeekProvider, logger Logger) *UseCase {
	return &UseCase{
		weeks:  weeks,
		logger: logger,
	}
}

// Execute формирует XLSX с сеткой текущей недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Сетка недели
	week, err := uc.weeks.Execute(ctx, &get_week.Request{TZOffsetMinutes: req.TZOffsetMinutes})
	if err != nil {
		if errors.Is(err, get_week.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: failed to get week: %v", ErrInternal, err)
	}

	// 2. Книга
	content, err := buildWorkbook(week)
	if err != nil {
		uc.logger.Error("ExportWeek: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: failed to build workbook: %v", ErrInternal, err)
	}

	fileName := "week.xlsx"
	if len(week.Dates) > 0 {
		fileName = fmt.Sprintf("desks_%s.xlsx", week.Dates[0])
	}

	uc.logger.Info("ExportWeek: %s, %d bytes", fileName, len(content))
	return &Response{FileName: fileName, Content: content}, nil
}
