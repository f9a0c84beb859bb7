package update_desks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgDemoMode           = "В демо-режиме настройки столов недоступны"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/admin/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateDesksRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /api/admin/desks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetDesks(r.Context(), req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, roster.ErrDemoMode):
			handlers.RespondBadRequest(w, msgDemoMode)
		default:
			h.logger.Error("PUT /api/admin/desks - Failed to set desks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}
