package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	addTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/add_team_member"
	bookDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/book_desk"
	deleteTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_team_member"
	exportWeekHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/export_week"
	getAdminConfigHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_admin_config"
	getWeekHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_week"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/health"
	unbookDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/unbook_desk"
	updateDesksHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_desks"
	updateTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_team_member"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
)

// Handlers все обработчики API
type Handlers struct {
	GetWeek          *getWeekHandler.Handler
	ExportWeek       *exportWeekHandler.Handler
	BookDesk         *bookDeskHandler.Handler
	UnbookDesk       *unbookDeskHandler.Handler
	GetAdminConfig   *getAdminConfigHandler.Handler
	UpdateDesks      *updateDesksHandler.Handler
	AddTeamMember    *addTeamMemberHandler.Handler
	UpdateTeamMember *updateTeamMemberHandler.Handler
	DeleteTeamMember *deleteTeamMemberHandler.Handler
	Health           *health.Handler
}

// Options необязательные части роутера, nil отключает соответствующую часть
type Options struct {
	HTTPMetrics    middleware.HTTPObserver
	MetricsPath    string
	MetricsHandler http.Handler
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

// NewRouter собирает маршруты сервиса
func NewRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	if opts.HTTPMetrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.HTTPMetrics))
	}

	// Служебные маршруты
	r.HandleFunc("/health", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Middleware)
	}

	// --- Неделя и брони ---
	api.HandleFunc("/week", h.GetWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/week/export", h.ExportWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", h.BookDesk.Handle).Methods(http.MethodPost)
	api.HandleFunc("/unbook", h.UnbookDesk.Handle).Methods(http.MethodPost)

	// --- Настройки ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/config", h.GetAdminConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/desks", h.UpdateDesks.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/team", h.AddTeamMember.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/team/{id}", h.UpdateTeamMember.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/team/{id}", h.DeleteTeamMember.Handle).Methods(http.MethodDelete)

	// CORS снаружи mux: preflight OPTIONS не совпадает ни с одним маршрутом
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:         300,
	})

	return middleware.RequestID(corsHandler(r))
}
