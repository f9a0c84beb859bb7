package export_week

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	exportWeek "github.com/m04kA/SMC-DeskBookingService/internal/usecase/export_week"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *exportWeek.Request) (*exportWeek.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*exportWeek.Response)
	return resp, args.Error(1)
}

func TestHandle_WritesFile(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *exportWeek.Request) bool {
		return req.TZOffsetMinutes != nil && *req.TZOffsetMinutes == -180
	})).Return(&exportWeek.Response{FileName: "desks_2024-06-03.xlsx", Content: []byte("xlsx")}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/week/export?tzOffsetMinutes=-180", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exportWeek.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="desks_2024-06-03.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "xlsx", rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "missing tz", err: exportWeek.ErrInvalidInput, status: http.StatusBadRequest, message: msgTZOffsetRequired},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/week/export", nil))

			assert.Equal(t, tt.status, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp["error"])
		})
	}
}
