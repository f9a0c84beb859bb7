package add_team_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgInvalidName        = "Фамилия от 2 до 80 символов"
	msgDemoMode           = "В демо-режиме нельзя добавлять участников"
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

// Handle POST /api/admin/team
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddTeamMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/admin/team - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	id, err := h.service.AddMember(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrDemoMode):
			handlers.RespondBadRequest(w, msgDemoMode)
		case errors.Is(err, roster.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidName)
		default:
			h.logger.Error("POST /api/admin/team - Failed to add member: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	members, err := h.service.ListMembers(r.Context())
	if err != nil {
		h.logger.Error("POST /api/admin/team - Failed to list members after add id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AddTeamMemberResponse{
		ID:          id,
		TeamMembers: rosterModels.FromDomainMembers(members),
	})
}
