package desk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации столов (таблицы desks и settings)
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// GetNumDesks возвращает количество столов.
// Отсутствующая или нечисловая настройка дает DefaultNumDesks, значение приводится к 1..12.
func (r *Repository) GetNumDesks(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": domain.NumDesksSettingKey}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetNumDesks - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultNumDesks, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetNumDesks - scan setting: %v", ErrScanRow, err)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return domain.DefaultNumDesks, nil
	}

	return domain.ClampNumDesks(n), nil
}

// ListDesks возвращает все сохраненные столы по возрастанию id
func (r *Repository) ListDesks(ctx context.Context) ([]domain.Desk, error) {
	query, args, err := r.sb.Select("id", "name").
		From("desks").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]domain.Desk, 0)
	for rows.Next() {
		var d domain.Desk
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("%w: ListDesks - scan desk: %v", ErrScanRow, err)
		}
		desks = append(desks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDesks - rows iteration: %v", ErrScanRow, err)
	}

	return desks, nil
}

// SetDesks сохраняет количество столов и имена столов 1..numDesks в одной транзакции
func (r *Repository) SetDesks(ctx context.Context, numDesks int, desks []domain.Desk) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: SetDesks - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := r.sb.Insert("settings").
		Columns("key", "value").
		Values(domain.NumDesksSettingKey, strconv.Itoa(numDesks)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetDesks - build settings upsert: %v", ErrBuildQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetDesks - upsert num_desks: %v", ErrExecQuery, err)
	}

	for _, d := range desks {
		query, args, err = r.sb.Insert("desks").
			Columns("id", "name").
			Values(d.ID, d.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: SetDesks - build desk upsert: %v", ErrBuildQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: SetDesks - upsert desk %d: %v", ErrExecQuery, d.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: SetDesks - commit: %v", ErrTransaction, err)
	}
	return nil
}
