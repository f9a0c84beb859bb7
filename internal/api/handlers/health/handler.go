package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Check проверка зависимости для /ready
type Check func(ctx context.Context) error

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	checks map[string]Check
	logger Logger
}

// NewHandler checks - проверки зависимостей по имени (database, redis)
func NewHandler(checks map[string]Check, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Live GET /health
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready GET /ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := http.StatusOK
	result := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("GET /ready - %s check failed: %v", name, err)
			result[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}

	handlers.RespondJSON(w, status, result)
}
