package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ledger: invalid input")

	// ErrConflict возвращается, когда слот уже занят
	ErrConflict = errors.New("ledger: slot already booked")

	// ErrForbidden возвращается, когда брони нет или имя не совпадает с владельцем
	ErrForbidden = errors.New("ledger: booking not owned by caller")

	// ErrStorageUnavailable возвращается при ошибках хранилища
	ErrStorageUnavailable = errors.New("ledger: storage unavailable")
)

// Уточнения ErrInvalidInput, по ним транспорт выбирает сообщение
var (
	ErrInvalidBookedBy  = fmt.Errorf("%w: bookedBy must be 2..40 characters", ErrInvalidInput)
	ErrBookedByRequired = fmt.Errorf("%w: bookedBy is required", ErrInvalidInput)
	ErrInvalidDeskID    = fmt.Errorf("%w: deskId out of range", ErrInvalidInput)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	ErrTZOffsetRequired = fmt.Errorf("%w: tzOffsetMinutes required", ErrInvalidInput)
	ErrDateOutsideWeek  = fmt.Errorf("%w: date outside of the work week", ErrInvalidInput)
	ErrNoteTooLong      = fmt.Errorf("%w: note is too long", ErrInvalidInput)
)

// DeskRangeError deskId вне 1..Max
type DeskRangeError struct {
	DeskID int
	Max    int
}

func (e *DeskRangeError) Error() string {
	return fmt.Sprintf("%v: got %d, want 1..%d", ErrInvalidDeskID, e.DeskID, e.Max)
}

func (e *DeskRangeError) Unwrap() error {
	return ErrInvalidDeskID
}
