package ledger

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
)

// Service журнал броней: слот (стол, дата) -> бронь
type Service struct {
	bookingRepo  BookingRepository
	deskRepo     DeskRepository
	outcomes     OutcomeRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	bookingRepo BookingRepository,
	deskRepo DeskRepository,
	outcomes OutcomeRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		deskRepo:     deskRepo,
		outcomes:     outcomes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Week возвращает текущую рабочую неделю пользователя
func (s *Service) Week(tzOffsetMinutes *float64) (domain.WorkWeek, error) {
	offset, err := validateTZOffset(tzOffsetMinutes)
	if err != nil {
		return domain.WorkWeek{}, err
	}

	week, err := domain.ComputeWorkWeek(s.timeProvider.Now(), offset)
	if err != nil {
		return domain.WorkWeek{}, fmt.Errorf("%w: %v", ErrTZOffsetRequired, err)
	}
	return week, nil
}

// Book бронирует стол на дату текущей недели.
// Из нескольких одновременных запросов на один слот успешен ровно один.
func (s *Service) Book(ctx context.Context, req *models.BookRequest) error {
	booking, err := s.prepareBooking(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Book: validation failed: %v", err)
			s.outcomes.RecordBookingOutcome(metrics.OutcomeInvalid)
		} else {
			s.outcomes.RecordBookingOutcome(metrics.OutcomeError)
		}
		return err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			s.logger.Info("Book: desk=%d date=%s already taken, rejected %q", booking.DeskID, booking.Date, booking.BookedBy)
			s.outcomes.RecordBookingOutcome(metrics.OutcomeConflict)
			return ErrConflict
		}
		s.logger.Error("Book: repository error for desk=%d date=%s: %v", booking.DeskID, booking.Date, err)
		s.outcomes.RecordBookingOutcome(metrics.OutcomeError)
		return fmt.Errorf("%w: Book - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Book: desk=%d date=%s booked by %q", booking.DeskID, booking.Date, booking.BookedBy)
	s.outcomes.RecordBookingOutcome(metrics.OutcomeBooked)
	return nil
}

func (s *Service) prepareBooking(ctx context.Context, req *models.BookRequest) (*domain.Booking, error) {
	bookedBy, err := validateBookedBy(req.BookedBy)
	if err != nil {
		return nil, err
	}

	numDesks, err := s.deskRepo.GetNumDesks(ctx)
	if err != nil {
		s.logger.Error("Book: failed to get desk count: %v", err)
		return nil, fmt.Errorf("%w: Book - get desk count: %v", ErrStorageUnavailable, err)
	}
	if err := validateDeskID(req.DeskID, numDesks); err != nil {
		return nil, err
	}

	date, err := validateDate(req.Date)
	if err != nil {
		return nil, err
	}

	week, err := s.Week(req.TZOffsetMinutes)
	if err != nil {
		return nil, err
	}
	if !week.Contains(date) {
		return nil, fmt.Errorf("%w: %s not in %s..%s", ErrDateOutsideWeek, date, week.Start(), week.End())
	}

	note, err := normalizeNote(req.Note)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		DeskID:   req.DeskID,
		Date:     date,
		BookedBy: bookedBy,
		Note:     note,
	}, nil
}

// Unbook снимает бронь, если она принадлежит bookedBy.
// Отсутствие брони и чужая бронь неразличимы: обе дают ErrForbidden.
func (s *Service) Unbook(ctx context.Context, req *models.UnbookRequest) error {
	deskID, date, bookedBy, err := validateUnbook(req)
	if err != nil {
		s.logger.Warn("Unbook: validation failed: %v", err)
		s.outcomes.RecordBookingOutcome(metrics.OutcomeInvalid)
		return err
	}

	if err := s.bookingRepo.DeleteOwned(ctx, deskID, date, bookedBy); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotOwned) {
			s.logger.Info("Unbook: desk=%d date=%s not owned by %q", deskID, date, bookedBy)
			s.outcomes.RecordBookingOutcome(metrics.OutcomeForbidden)
			return ErrForbidden
		}
		s.logger.Error("Unbook: repository error for desk=%d date=%s: %v", deskID, date, err)
		s.outcomes.RecordBookingOutcome(metrics.OutcomeError)
		return fmt.Errorf("%w: Unbook - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Unbook: desk=%d date=%s released by %q", deskID, date, bookedBy)
	s.outcomes.RecordBookingOutcome(metrics.OutcomeUnbooked)
	return nil
}

func validateUnbook(req *models.UnbookRequest) (int, civil.Date, string, error) {
	if err := validateDeskID(req.DeskID, domain.MaxDesks); err != nil {
		return 0, civil.Date{}, "", err
	}

	date, err := validateDate(req.Date)
	if err != nil {
		return 0, civil.Date{}, "", err
	}

	bookedBy, err := validateBookedByPresent(req.BookedBy)
	if err != nil {
		return 0, civil.Date{}, "", err
	}

	return req.DeskID, date, bookedBy, nil
}

// ListBookings возвращает брони from <= date <= to по дате и столу
func (s *Service) ListBookings(ctx context.Context, from, to civil.Date) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBookings: repository error for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrStorageUnavailable, err)
	}
	return bookings, nil
}

// WeekBookings текущая неделя пользователя и брони на нее
func (s *Service) WeekBookings(ctx context.Context, tzOffsetMinutes *float64) (domain.WorkWeek, []*domain.Booking, error) {
	week, err := s.Week(tzOffsetMinutes)
	if err != nil {
		return domain.WorkWeek{}, nil, err
	}

	bookings, err := s.ListBookings(ctx, week.Start(), week.End())
	if err != nil {
		return domain.WorkWeek{}, nil, err
	}
	return week, bookings, nil
}
