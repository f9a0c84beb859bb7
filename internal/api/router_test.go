package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
	exportWeekUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/export_week"
	getWeekUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
)

func newTestServer(t *testing.T, demo bool) *httptest.Server {
	t.Helper()
	log := logger.Nop()
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("desk_booking_test", registry)

	bookings := memory.NewBookingStore()
	desks := memory.NewDeskStore(domain.DefaultNumDesks)
	team := memory.NewTeamStore()

	ledgerSvc := ledger.NewService(bookings, desks, m, log)
	rosterSvc := roster.NewService(team, desks, demo, log)
	getWeek := getWeekUC.NewUseCase(ledgerSvc, rosterSvc, log)
	exportWeek := exportWeekUC.NewUseCase(getWeek, log)

	router := NewRouter(Handlers{
		GetWeek:          getWeekHandler.NewHandler(getWeek, log),
		ExportWeek:       exportWeekHandler.NewHandler(exportWeek, log),
		BookDesk:         bookDeskHandler.NewHandler(ledgerSvc, log),
		UnbookDesk:       unbookDeskHandler.NewHandler(ledgerSvc, log),
		GetAdminConfig:   getAdminConfigHandler.NewHandler(rosterSvc, log),
		UpdateDesks:      updateDesksHandler.NewHandler(rosterSvc, log),
		AddTeamMember:    addTeamMemberHandler.NewHandler(rosterSvc, log),
		UpdateTeamMember: updateTeamMemberHandler.NewHandler(rosterSvc, log),
		DeleteTeamMember: deleteTeamMemberHandler.NewHandler(rosterSvc, log),
		Health:           health.NewHandler(map[string]health.Check{}, log),
	}, Options{
		HTTPMetrics:    m,
		MetricsPath:    "/metrics",
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func currentMonday(t *testing.T) string {
	t.Helper()
	week, err := domain.ComputeWorkWeek(time.Now(), 0)
	require.NoError(t, err)
	return week.Start().String()
}

func TestRouter_BookingFlow(t *testing.T) {
	srv := newTestServer(t, false)
	monday := currentMonday(t)

	status, body := doJSON(t, srv, http.MethodPost, "/api/book", map[string]interface{}{
		"deskId": 1, "date": monday, "bookedBy": "Ann", "tzOffsetMinutes": 0,
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["ok"])

	status, body = doJSON(t, srv, http.MethodPost, "/api/book", map[string]interface{}{
		"deskId": "1", "date": monday, "bookedBy": "Bob", "tzOffsetMinutes": "0",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Уже занято", body["error"])

	status, body = doJSON(t, srv, http.MethodPost, "/api/unbook", map[string]interface{}{
		"deskId": 1, "date": monday, "bookedBy": "Bob",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.NotEmpty(t, body["error"])

	status, body = doJSON(t, srv, http.MethodGet, "/api/week?tzOffsetMinutes=0", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["dates"], domain.WorkWeekDays)
	assert.Len(t, body["desks"], domain.DefaultNumDesks)
	assert.Equal(t, false, body["demo"])
	bookings, ok := body["bookings"].([]interface{})
	require.True(t, ok)
	require.Len(t, bookings, 1)
	first := bookings[0].(map[string]interface{})
	assert.Equal(t, "Ann", first["booked_by"])
	assert.Equal(t, monday, first["date"])

	status, _ = doJSON(t, srv, http.MethodPost, "/api/unbook", map[string]interface{}{
		"deskId": 1, "date": monday, "bookedBy": "Ann",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, srv, http.MethodPost, "/api/book", map[string]interface{}{
		"deskId": 1, "date": monday, "bookedBy": "Bob", "tzOffsetMinutes": 0,
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_BookValidation(t *testing.T) {
	srv := newTestServer(t, false)
	monday := currentMonday(t)

	tests := []struct {
		name    string
		body    map[string]interface{}
		message string
	}{
		{
			name:    "short name",
			body:    map[string]interface{}{"deskId": 1, "date": monday, "bookedBy": "A", "tzOffsetMinutes": 0},
			message: "Имя обязательно: от 2 до 40 символов",
		},
		{
			name:    "desk out of range",
			body:    map[string]interface{}{"deskId": 7, "date": monday, "bookedBy": "Ann", "tzOffsetMinutes": 0},
			message: fmt.Sprintf("deskId должен быть от 1 до %d", domain.DefaultNumDesks),
		},
		{
			name:    "missing tz",
			body:    map[string]interface{}{"deskId": 1, "date": monday, "bookedBy": "Ann"},
			message: "tzOffsetMinutes required",
		},
		{
			name:    "outside week",
			body:    map[string]interface{}{"deskId": 1, "date": "2000-01-03", "bookedBy": "Ann", "tzOffsetMinutes": 0},
			message: "Дата должна быть в пределах отображаемой недели",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, srv, http.MethodPost, "/api/book", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestRouter_WeekRequiresTZ(t *testing.T) {
	srv := newTestServer(t, false)

	status, body := doJSON(t, srv, http.MethodGet, "/api/week", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "tzOffsetMinutes required", body["error"])
}

func TestRouter_Admin(t *testing.T) {
	srv := newTestServer(t, false)

	status, body := doJSON(t, srv, http.MethodPost, "/api/admin/team", map[string]interface{}{
		"name": "  Иванова  ", "desiredDays": 9,
	})
	require.Equal(t, http.StatusOK, status, body)
	id := int64(body["id"].(float64))
	members := body["teamMembers"].([]interface{})
	require.Len(t, members, 1)
	member := members[0].(map[string]interface{})
	assert.Equal(t, "Иванова", member["name"])
	assert.Equal(t, float64(domain.MaxDesiredDays), member["desired_days"])

	status, _ = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/admin/team/%d", id), map[string]interface{}{
		"desiredDays": 2,
	})
	assert.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, srv, http.MethodPatch, "/api/admin/team/999", map[string]interface{}{"desiredDays": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Участник не найден", body["error"])

	status, _ = doJSON(t, srv, http.MethodPatch, "/api/admin/team/abc", map[string]interface{}{"desiredDays": 1})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, srv, http.MethodPut, "/api/admin/desks", map[string]interface{}{
		"numDesks": 2, "desks": []map[string]interface{}{{"id": 1, "name": "  Окно "}, {"id": 2}},
	})
	assert.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, srv, http.MethodGet, "/api/admin/config", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["numDesks"])
	desks := body["desks"].([]interface{})
	require.Len(t, desks, 2)
	assert.Equal(t, "Окно", desks[0].(map[string]interface{})["name"])
	assert.Equal(t, "Стол 2", desks[1].(map[string]interface{})["name"])

	status, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/admin/team/%d", id), nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/admin/team/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_DemoModeRejectsMutations(t *testing.T) {
	srv := newTestServer(t, true)

	status, body := doJSON(t, srv, http.MethodPost, "/api/admin/team", map[string]interface{}{"name": "Иванова"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "В демо-режиме нельзя добавлять участников", body["error"])

	status, body = doJSON(t, srv, http.MethodGet, "/api/admin/config", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["demo"])
}

func TestRouter_ExportAndService(t *testing.T) {
	srv := newTestServer(t, false)

	resp, err := srv.Client().Get(srv.URL + "/api/week/export?tzOffsetMinutes=0")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, exportWeekUC.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "desks_"+currentMonday(t)+".xlsx")

	status, body := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, _ = doJSON(t, srv, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, status)

	metricsResp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	data, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `path="/api/week/export"`)
	assert.NotEmpty(t, metricsResp.Header.Get("X-Request-ID"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/book", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_LargeNumbersSaturate(t *testing.T) {
	srv := newTestServer(t, false)

	status, body := doJSON(t, srv, http.MethodPost, "/api/admin/team", map[string]interface{}{
		"name": "Ann", "desiredDays": 1e20,
	})
	require.Equal(t, http.StatusOK, status, body)
	id := int64(body["id"].(float64))
	member := body["teamMembers"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(domain.MaxDesiredDays), member["desired_days"])

	status, _ = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/admin/team/%d", id), map[string]interface{}{"desiredDays": 1})
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/admin/team/%d", id), map[string]interface{}{"desiredDays": 1e20})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, srv, http.MethodPut, "/api/admin/desks", map[string]interface{}{"numDesks": 1e12})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, srv, http.MethodGet, "/api/admin/config", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(domain.MaxDesks), body["numDesks"])
	assert.Len(t, body["desks"], domain.MaxDesks)
	member = body["teamMembers"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(domain.MaxDesiredDays), member["desired_days"])

	status, _ = doJSON(t, srv, http.MethodPut, "/api/admin/desks", map[string]interface{}{"numDesks": -1e12})
	require.Equal(t, http.StatusOK, status)
	_, body = doJSON(t, srv, http.MethodGet, "/api/admin/config", nil)
	assert.Equal(t, float64(domain.MinDesks), body["numDesks"])
}
