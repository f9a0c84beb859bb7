package delete_team_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
)

const (
	msgInvalidID = "Некорректный id"
	msgNotFound  = "Не удалось удалить"
	msgDemoMode  = "Демо-режим"
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

// Handle DELETE /api/admin/team/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.service.DeleteMember(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, roster.ErrDemoMode):
			handlers.RespondBadRequest(w, msgDemoMode)
		case errors.Is(err, roster.ErrInvalidMemberID):
			handlers.RespondBadRequest(w, msgInvalidID)
		case errors.Is(err, roster.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /api/admin/team/%d - Failed to delete member: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}
