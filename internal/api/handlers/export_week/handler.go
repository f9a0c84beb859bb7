package export_week

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	exportWeek "github.com/m04kA/SMC-DeskBookingService/internal/usecase/export_week"
)

const (
	msgTZOffsetRequired = "tzOffsetMinutes required"
)

type Handler struct {
	useCase ExportWeekUseCase
	logger  Logger
}

func NewHandler(useCase ExportWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/week/export?tzOffsetMinutes=-180
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &exportWeek.Request{TZOffsetMinutes: handlers.ParseTZOffset(r, "tzOffsetMinutes")}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportWeek.ErrInvalidInput):
			h.logger.Warn("GET /api/week/export - Invalid tzOffsetMinutes: %q", r.URL.Query().Get("tzOffsetMinutes"))
			handlers.RespondBadRequest(w, msgTZOffsetRequired)
		default:
			h.logger.Error("GET /api/week/export - Failed to export week: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", exportWeek.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /api/week/export - Failed to write response: %v", err)
	}
}
