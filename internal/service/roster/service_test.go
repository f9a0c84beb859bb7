package roster

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Members(t *testing.T) {
	svc := NewService(memory.NewTeamStore(), memory.NewDeskStore(6), false, nopLogger{})
	ctx := context.Background()

	id, err := svc.AddMember(ctx, &models.AddMemberRequest{Name: "  Гребенюк ", DesiredDays: 9})
	require.NoError(t, err)

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, &domain.TeamMember{ID: id, Name: "Гребенюк", DesiredDays: 7}, members[0])

	require.NoError(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: id, DesiredDays: ptr.Ptr(-2)}))
	require.NoError(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: id, Name: ptr.Ptr(" Баскир ")}))

	members, err = svc.ListMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Баскир", members[0].Name)
	assert.Equal(t, 0, members[0].DesiredDays)

	require.NoError(t, svc.DeleteMember(ctx, id))
	assert.ErrorIs(t, svc.DeleteMember(ctx, id), ErrNotFound)
	assert.ErrorIs(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: id, DesiredDays: ptr.Ptr(1)}), ErrNotFound)
}

func TestService_MemberValidation(t *testing.T) {
	svc := NewService(memory.NewTeamStore(), memory.NewDeskStore(6), false, nopLogger{})
	ctx := context.Background()

	_, err := svc.AddMember(ctx, &models.AddMemberRequest{Name: " Я "})
	assert.ErrorIs(t, err, ErrInvalidMemberName)
	_, err = svc.AddMember(ctx, &models.AddMemberRequest{Name: strings.Repeat("ф", 81)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AddMember(ctx, &models.AddMemberRequest{Name: strings.Repeat("ф", 80)})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: 0}), ErrInvalidMemberID)
	assert.ErrorIs(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: 1, Name: ptr.Ptr("")}), ErrInvalidMemberName)
	assert.ErrorIs(t, svc.DeleteMember(ctx, -1), ErrInvalidMemberID)
}

func TestService_Desks(t *testing.T) {
	svc := NewService(memory.NewTeamStore(), memory.NewDeskStore(6), false, nopLogger{})
	ctx := context.Background()

	cfg, err := svc.GetDeskConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumDesks)
	require.Len(t, cfg.Desks, 6)
	assert.Equal(t, "Стол 6", cfg.Desks[5].Name)

	require.NoError(t, svc.SetDesks(ctx, &models.SetDesksRequest{
		NumDesks: 3,
		Desks:    []models.DeskInput{{ID: 1, Name: " У окна "}, {ID: 3, Name: "   "}},
	}))

	cfg, err = svc.GetDeskConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumDesks)
	assert.Equal(t, []domain.Desk{
		{ID: 1, Name: "У окна"},
		{ID: 2, Name: "Стол 2"},
		{ID: 3, Name: "Стол 3"},
	}, cfg.Desks)

	require.NoError(t, svc.SetDesks(ctx, &models.SetDesksRequest{NumDesks: 0}))
	cfg, err = svc.GetDeskConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNumDesks, cfg.NumDesks)
	assert.Equal(t, "Стол 1", cfg.Desks[0].Name)

	require.NoError(t, svc.SetDesks(ctx, &models.SetDesksRequest{NumDesks: 40}))
	cfg, err = svc.GetDeskConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxDesks, cfg.NumDesks)
	assert.Len(t, cfg.Desks, domain.MaxDesks)
}

func TestService_DemoMode(t *testing.T) {
	demo := memory.NewDemo()
	svc := NewService(demo.Team, demo.Desks, true, nopLogger{})
	ctx := context.Background()

	assert.True(t, svc.IsDemo())

	_, err := svc.AddMember(ctx, &models.AddMemberRequest{Name: "Новиков"})
	assert.ErrorIs(t, err, ErrDemoMode)
	assert.ErrorIs(t, svc.UpdateMember(ctx, &models.UpdateMemberRequest{ID: 1}), ErrDemoMode)
	assert.ErrorIs(t, svc.DeleteMember(ctx, 1), ErrDemoMode)
	assert.ErrorIs(t, svc.SetDesks(ctx, &models.SetDesksRequest{NumDesks: 2}), ErrDemoMode)

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 15)

	cfg, err := svc.GetDeskConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumDesks)
}

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]*domain.TeamMember)
	return members, args.Error(1)
}

func (m *mockTeamRepository) Create(ctx context.Context, name string, desiredDays int) (int64, error) {
	args := m.Called(ctx, name, desiredDays)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamRepository) Update(ctx context.Context, id int64, update domain.TeamMemberUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *mockTeamRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_StorageFailure(t *testing.T) {
	repo := &mockTeamRepository{}
	dbErr := errors.New("connection reset")
	repo.On("List", mock.Anything).Return(nil, dbErr)
	repo.On("Create", mock.Anything, "Власов", 2).Return(int64(0), dbErr)
	repo.On("Delete", mock.Anything, int64(5)).Return(dbErr)

	svc := NewService(repo, memory.NewDeskStore(6), false, nopLogger{})
	ctx := context.Background()

	_, err := svc.ListMembers(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	_, err = svc.AddMember(ctx, &models.AddMemberRequest{Name: "Власов", DesiredDays: 2})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, svc.DeleteMember(ctx, 5), ErrStorageUnavailable)

	repo.AssertExpectations(t)
}
