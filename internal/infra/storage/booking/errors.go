package booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда на стол в эту дату уже есть бронь
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBookingNotOwned возвращается, когда брони нет или она принадлежит другому имени
	ErrBookingNotOwned = errors.New("booking.repository: booking not found or not owned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
