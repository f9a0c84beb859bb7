package unbook_desk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgInvalidDeskID      = "deskId должен быть от 1 до %d"
	msgInvalidDate        = "Некорректная дата"
	msgBookedByRequired   = "Имя обязательно"
	msgNotOwned           = "Нельзя снять бронь: имя не совпадает или брони нет"
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

// Handle POST /api/unbook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UnbookDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/unbook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Unbook(r.Context(), req.ToServiceRequest())
	if err != nil {
		var rangeErr *ledger.DeskRangeError
		switch {
		case errors.Is(err, ledger.ErrForbidden):
			handlers.RespondForbidden(w, msgNotOwned)

		case errors.As(err, &rangeErr):
			handlers.RespondBadRequest(w, fmt.Sprintf(msgInvalidDeskID, rangeErr.Max))

		case errors.Is(err, ledger.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, ledger.ErrBookedByRequired):
			handlers.RespondBadRequest(w, msgBookedByRequired)

		case errors.Is(err, ledger.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /api/unbook - Failed to unbook desk=%d date=%s: %v", req.DeskID.Int(), req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}
