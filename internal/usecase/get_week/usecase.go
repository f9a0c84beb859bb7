package get_week

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger"
	ledgerModels "github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

// UseCase use case для получения сетки текущей недели
type UseCase struct {
	ledger LedgerService
	roster RosterService
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger LedgerService, roster RosterService, logger Logger) *UseCase {
	return &UseCase{
		ledger: ledger,
		roster: roster,
		logger: logger,
	}
}

// Execute собирает даты недели, столы, брони и прогресс участников
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Неделя и брони на нее
	week, bookings, err := uc.ledger.WeekBookings(ctx, req.TZOffsetMinutes)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			uc.logger.Warn("GetWeek: invalid tzOffsetMinutes: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetWeek: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 2. Столы
	deskConfig, err := uc.roster.GetDeskConfig(ctx)
	if err != nil {
		uc.logger.Error("GetWeek: failed to get desk config: %v", err)
		return nil, fmt.Errorf("%w: failed to get desks: %v", ErrInternal, err)
	}

	// 3. Участники
	members, err := uc.roster.ListMembers(ctx)
	if err != nil {
		uc.logger.Error("GetWeek: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
	}

	summaries := make([]TeamMemberSummary, 0, len(members))
	for _, m := range members {
		summaries = append(summaries, TeamMemberSummary{
			Name:        m.Name,
			DesiredDays: m.DesiredDays,
			BookedCount: domain.CountByMember(m.Name, bookings),
		})
	}

	uc.logger.Info("GetWeek: %s..%s, %d bookings, %d desks", week.Start(), week.End(), len(bookings), deskConfig.NumDesks)

	return &Response{
		Dates:       week.Strings(),
		Desks:       rosterModels.FromDomainDesks(deskConfig.Desks),
		Bookings:    ledgerModels.FromDomainBookingList(bookings),
		TeamMembers: summaries,
		Demo:        uc.roster.IsDemo(),
	}, nil
}
