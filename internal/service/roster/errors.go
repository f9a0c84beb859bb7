package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("roster: invalid input")

	// ErrNotFound возвращается, когда участник не найден
	ErrNotFound = errors.New("roster: member not found")

	// ErrDemoMode возвращается при попытке изменить настройки в демо-режиме
	ErrDemoMode = errors.New("roster: demo mode is read-only")

	// ErrStorageUnavailable возвращается при ошибках хранилища
	ErrStorageUnavailable = errors.New("roster: storage unavailable")
)

var (
	ErrInvalidMemberName = fmt.Errorf("%w: name must be 2..80 characters", ErrInvalidInput)
	ErrInvalidMemberID   = fmt.Errorf("%w: id must be positive", ErrInvalidInput)
)
