package get_week

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном смещении часового пояса
	ErrInvalidInput = errors.New("get_week: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week: internal error")
)
