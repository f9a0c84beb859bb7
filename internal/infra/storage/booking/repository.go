package booking

import (
	"context"
	"database/sql"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/sqldate"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// Repository репозиторий броней столов
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// Create атомарно занимает слот (desk_id, date).
// Проверка и вставка выполняются одним INSERT ... ON CONFLICT DO NOTHING:
// ноль затронутых строк означает, что слот уже занят.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	query, args, err := r.sb.Insert("bookings").
		Columns("desk_id", "date", "booked_by", "note").
		Values(booking.DeskID, booking.Date.String(), booking.BookedBy, noteArg(booking.Note)).
		Suffix("ON CONFLICT (desk_id, date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// DeleteOwned удаляет бронь, только если она принадлежит bookedBy.
// Проверка владельца и удаление выполняются одним DELETE.
func (r *Repository) DeleteOwned(ctx context.Context, deskID int, date civil.Date, bookedBy string) error {
	query, args, err := r.sb.Delete("bookings").
		Where(squirrel.Eq{
			"desk_id":   deskID,
			"date":      date.String(),
			"booked_by": bookedBy,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOwned - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOwned - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOwned - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotOwned
	}

	return nil
}

// ListByDateRange возвращает брони from <= date <= to, отсортированные по дате и столу
func (r *Repository) ListByDateRange(ctx context.Context, from, to civil.Date) ([]*domain.Booking, error) {
	query, args, err := r.sb.Select("desk_id", "date", "booked_by", "note").
		From("bookings").
		Where(squirrel.GtOrEq{"date": from.String()}).
		Where(squirrel.LtOrEq{"date": to.String()}).
		OrderBy("date", "desk_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var (
			b    domain.Booking
			date sqldate.Date
			note sql.NullString
		)
		if err := rows.Scan(&b.DeskID, &date, &b.BookedBy, &note); err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - scan booking: %v", ErrScanRow, err)
		}
		b.Date = date.Date
		if note.Valid {
			b.Note = &note.String
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// noteArg пустая заметка хранится как NULL
func noteArg(note *string) any {
	if note == nil {
		return nil
	}
	return *note
}
