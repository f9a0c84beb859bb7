package team

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// Repository репозиторий участников команды
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// List возвращает участников по возрастанию id
func (r *Repository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query, args, err := r.sb.Select("id", "name", "desired_days").
		From("team_members").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.DesiredDays); err != nil {
			return nil, fmt.Errorf("%w: List - scan member: %v", ErrScanRow, err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return members, nil
}

// Create добавляет участника и возвращает его id
func (r *Repository) Create(ctx context.Context, name string, desiredDays int) (int64, error) {
	query, args, err := r.sb.Insert("team_members").
		Columns("name", "desired_days").
		Values(name, desiredDays).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Update обновляет заданные поля участника
func (r *Repository) Update(ctx context.Context, id int64, update domain.TeamMemberUpdate) error {
	if update.IsEmpty() {
		return r.ensureExists(ctx, id)
	}

	builder := r.sb.Update("team_members").Where(squirrel.Eq{"id": id})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.DesiredDays != nil {
		builder = builder.Set("desired_days", *update.DesiredDays)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Delete удаляет участника
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *Repository) ensureExists(ctx context.Context, id int64) error {
	query, args, err := r.sb.Select("COUNT(*)").
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ensureExists - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%w: ensureExists - scan count: %v", ErrScanRow, err)
	}
	if count == 0 {
		return ErrMemberNotFound
	}
	return nil
}
