package get_admin_config

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
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

// Handle GET /api/admin/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListMembers(r.Context())
	if err != nil {
		h.logger.Error("GET /api/admin/config - Failed to list members: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	deskConfig, err := h.service.GetDeskConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /api/admin/config - Failed to get desks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	handlers.RespondJSON(w, http.StatusOK, &AdminConfigResponse{
		TeamMembers: rosterModels.FromDomainMembers(members),
		NumDesks:    deskConfig.NumDesks,
		Desks:       rosterModels.FromDomainDesks(deskConfig.Desks),
		Demo:        h.service.IsDemo(),
	})
}
