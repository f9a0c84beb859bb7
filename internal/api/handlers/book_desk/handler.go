package book_desk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgInvalidBookedBy    = "Имя обязательно: от 2 до 40 символов"
	msgInvalidDeskID      = "deskId должен быть от 1 до %d"
	msgInvalidDate        = "Некорректная дата"
	msgTZOffsetRequired   = "tzOffsetMinutes required"
	msgDateOutsideWeek    = "Дата должна быть в пределах отображаемой недели"
	msgNoteTooLong        = "Заметка: не более 140 символов"
	msgSlotTaken          = "Уже занято"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Book(r.Context(), req.ToServiceRequest())
	if err != nil {
		var rangeErr *ledger.DeskRangeError
		switch {
		case errors.Is(err, ledger.ErrConflict):
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, ledger.ErrInvalidBookedBy):
			handlers.RespondBadRequest(w, msgInvalidBookedBy)

		case errors.As(err, &rangeErr):
			handlers.RespondBadRequest(w, fmt.Sprintf(msgInvalidDeskID, rangeErr.Max))

		case errors.Is(err, ledger.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, ledger.ErrTZOffsetRequired):
			handlers.RespondBadRequest(w, msgTZOffsetRequired)

		case errors.Is(err, ledger.ErrDateOutsideWeek):
			handlers.RespondBadRequest(w, msgDateOutsideWeek)

		case errors.Is(err, ledger.ErrNoteTooLong):
			handlers.RespondBadRequest(w, msgNoteTooLong)

		case errors.Is(err, ledger.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /api/book - Failed to book desk=%d date=%s: %v", req.DeskID.Int(), req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}
