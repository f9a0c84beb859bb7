package update_team_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgInvalidID          = "Некорректный id"
	msgInvalidName        = "Фамилия от 2 до 80 символов"
	msgNotFound           = "Участник не найден"
	msgDemoMode           = "Демо-режим"
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

// Handle PATCH /api/admin/team/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// некорректный id отклоняет сервис (после проверки демо-режима)
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var req UpdateTeamMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /api/admin/team/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateMember(r.Context(), req.ToServiceRequest(id)); err != nil {
		switch {
		case errors.Is(err, roster.ErrDemoMode):
			handlers.RespondBadRequest(w, msgDemoMode)
		case errors.Is(err, roster.ErrInvalidMemberID):
			handlers.RespondBadRequest(w, msgInvalidID)
		case errors.Is(err, roster.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidName)
		case errors.Is(err, roster.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PATCH /api/admin/team/%d - Failed to update member: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}
