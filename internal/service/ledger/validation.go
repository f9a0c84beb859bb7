package ledger

import (
	"fmt"
	"math"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	bookedByRule = fmt.Sprintf("min=%d,max=%d", domain.MinBookedByLength, domain.MaxBookedByLength)
	dateRule     = "required,datetime=" + domain.DateFormat
	noteRule     = fmt.Sprintf("max=%d", domain.MaxNoteLength)
)

// validateBookedBy обрезает пробелы и проверяет длину имени в символах
func validateBookedBy(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := validate.Var(name, bookedByRule); err != nil {
		return "", ErrInvalidBookedBy
	}
	return name, nil
}

func validateDeskID(deskID, numDesks int) error {
	if !domain.IsValidDeskID(deskID, numDesks) {
		return &DeskRangeError{DeskID: deskID, Max: numDesks}
	}
	return nil
}

// validateDate принимает только YYYY-MM-DD
func validateDate(raw string) (civil.Date, error) {
	if err := validate.Var(raw, dateRule); err != nil {
		return civil.Date{}, ErrInvalidDate
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return civil.Date{}, ErrInvalidDate
	}
	return date, nil
}

func validateTZOffset(offset *float64) (float64, error) {
	if offset == nil || math.IsNaN(*offset) || math.IsInf(*offset, 0) {
		return 0, ErrTZOffsetRequired
	}
	return *offset, nil
}

// normalizeNote пустая заметка после обрезки пробелов становится nil
func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if err := validate.Var(trimmed, noteRule); err != nil {
		return nil, ErrNoteTooLong
	}
	return &trimmed, nil
}

func validateBookedByPresent(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := validate.Var(name, "required"); err != nil {
		return "", ErrBookedByRequired
	}
	return name, nil
}
