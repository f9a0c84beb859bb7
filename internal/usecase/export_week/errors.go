package export_week

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном смещении часового пояса
	ErrInvalidInput = errors.New("export_week: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_week: internal error")
)
