package memory

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/team"
)

// Ошибки совпадают с SQL-репозиториями, чтобы сервисы не различали хранилища
var (
	ErrSlotTaken       = booking.ErrSlotTaken
	ErrBookingNotOwned = booking.ErrBookingNotOwned
	ErrMemberNotFound  = team.ErrMemberNotFound
)
