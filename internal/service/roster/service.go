package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	teamRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/team"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

var (
	validate       = validator.New(validator.WithRequiredStructEnabled())
	memberNameRule = fmt.Sprintf("min=%d,max=%d", domain.MinMemberNameLength, domain.MaxMemberNameLength)
)

// Service состав команды и конфигурация столов
type Service struct {
	teamRepo TeamRepository
	deskRepo DeskRepository
	demo     bool
	logger   Logger
}

// NewService создает новый экземпляр сервиса.
// В демо-режиме (demo=true) изменения запрещены.
func NewService(teamRepo TeamRepository, deskRepo DeskRepository, demo bool, logger Logger) *Service {
	return &Service{
		teamRepo: teamRepo,
		deskRepo: deskRepo,
		demo:     demo,
		logger:   logger,
	}
}

// IsDemo true в демо-режиме
func (s *Service) IsDemo() bool {
	return s.demo
}

// ListMembers возвращает участников по возрастанию id
func (s *Service) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListMembers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMembers - repository error: %v", ErrStorageUnavailable, err)
	}
	return members, nil
}

// AddMember добавляет участника и возвращает его id
func (s *Service) AddMember(ctx context.Context, req *models.AddMemberRequest) (int64, error) {
	if s.demo {
		return 0, ErrDemoMode
	}

	name, err := validateMemberName(req.Name)
	if err != nil {
		s.logger.Warn("AddMember: validation failed: %v", err)
		return 0, err
	}
	desiredDays := domain.ClampDesiredDays(req.DesiredDays)

	id, err := s.teamRepo.Create(ctx, name, desiredDays)
	if err != nil {
		s.logger.Error("AddMember: repository error for %q: %v", name, err)
		return 0, fmt.Errorf("%w: AddMember - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("AddMember: id=%d name=%q desiredDays=%d", id, name, desiredDays)
	return id, nil
}

// UpdateMember меняет переданные поля участника
func (s *Service) UpdateMember(ctx context.Context, req *models.UpdateMemberRequest) error {
	if s.demo {
		return ErrDemoMode
	}
	if req.ID < 1 {
		return ErrInvalidMemberID
	}

	var update domain.TeamMemberUpdate
	if req.Name != nil {
		name, err := validateMemberName(*req.Name)
		if err != nil {
			s.logger.Warn("UpdateMember: validation failed for id=%d: %v", req.ID, err)
			return err
		}
		update.Name = &name
	}
	if req.DesiredDays != nil {
		days := domain.ClampDesiredDays(*req.DesiredDays)
		update.DesiredDays = &days
	}

	if err := s.teamRepo.Update(ctx, req.ID, update); err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			s.logger.Warn("UpdateMember: id=%d not found", req.ID)
			return ErrNotFound
		}
		s.logger.Error("UpdateMember: repository error for id=%d: %v", req.ID, err)
		return fmt.Errorf("%w: UpdateMember - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("UpdateMember: id=%d updated", req.ID)
	return nil
}

// DeleteMember удаляет участника. Брони участника не затрагиваются.
func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	if s.demo {
		return ErrDemoMode
	}
	if id < 1 {
		return ErrInvalidMemberID
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			s.logger.Warn("DeleteMember: id=%d not found", id)
			return ErrNotFound
		}
		s.logger.Error("DeleteMember: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMember - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("DeleteMember: id=%d deleted", id)
	return nil
}

// GetDeskConfig возвращает количество столов и столы 1..numDesks (недостающие с именем по умолчанию)
func (s *Service) GetDeskConfig(ctx context.Context) (*models.DeskConfig, error) {
	numDesks, err := s.deskRepo.GetNumDesks(ctx)
	if err != nil {
		s.logger.Error("GetDeskConfig: failed to get desk count: %v", err)
		return nil, fmt.Errorf("%w: GetDeskConfig - get desk count: %v", ErrStorageUnavailable, err)
	}

	desks, err := s.deskRepo.ListDesks(ctx)
	if err != nil {
		s.logger.Error("GetDeskConfig: failed to list desks: %v", err)
		return nil, fmt.Errorf("%w: GetDeskConfig - list desks: %v", ErrStorageUnavailable, err)
	}

	numDesks = domain.ClampNumDesks(numDesks)
	return &models.DeskConfig{
		NumDesks: numDesks,
		Desks:    domain.PadDesks(desks, numDesks),
	}, nil
}

// SetDesks сохраняет количество столов и имена столов 1..numDesks
func (s *Service) SetDesks(ctx context.Context, req *models.SetDesksRequest) error {
	if s.demo {
		return ErrDemoMode
	}

	numDesks := req.NumDesks
	if numDesks == 0 {
		numDesks = domain.DefaultNumDesks
	}
	numDesks = domain.ClampNumDesks(numDesks)

	names := make([]domain.Desk, 0, len(req.Desks))
	for _, d := range req.Desks {
		names = append(names, domain.Desk{ID: d.ID, Name: strings.TrimSpace(d.Name)})
	}
	desks := domain.PadDesks(names, numDesks)

	if err := s.deskRepo.SetDesks(ctx, numDesks, desks); err != nil {
		s.logger.Error("SetDesks: repository error: %v", err)
		return fmt.Errorf("%w: SetDesks - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("SetDesks: numDesks=%d", numDesks)
	return nil
}

func validateMemberName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := validate.Var(name, memberNameRule); err != nil {
		return "", ErrInvalidMemberName
	}
	return name, nil
}
