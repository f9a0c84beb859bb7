package get_week

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	getWeek "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
)

const (
	msgTZOffsetRequired = "tzOffsetMinutes required"
)

type Handler struct {
	useCase GetWeekUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/week?tzOffsetMinutes=-180
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getWeek.Request{TZOffsetMinutes: handlers.ParseTZOffset(r, "tzOffsetMinutes")}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getWeek.ErrInvalidInput):
			h.logger.Warn("GET /api/week - Invalid tzOffsetMinutes: %q", r.URL.Query().Get("tzOffsetMinutes"))
			handlers.RespondBadRequest(w, msgTZOffsetRequired)
		default:
			h.logger.Error("GET /api/week - Failed to get week: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
