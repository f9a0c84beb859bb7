package desk

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "desks.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db, psqlbuilder.SQLite))
	return NewRepository(db, psqlbuilder.SQLite), db
}

func TestRepository_GetNumDesks(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.GetNumDesks(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNumDesks, n)

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "4", want: 4},
		{name: "too many", value: "40", want: domain.MaxDesks},
		{name: "zero", value: "0", want: domain.MinDesks},
		{name: "garbage", value: "abc", want: domain.DefaultNumDesks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, `UPDATE settings SET value = ? WHERE key = 'num_desks'`, tt.value)
			require.NoError(t, err)

			n, err := repo.GetNumDesks(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestRepository_GetNumDesksMissingRow(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `DELETE FROM settings`)
	require.NoError(t, err)

	n, err := repo.GetNumDesks(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNumDesks, n)
}

func TestRepository_SetDesks(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetDesks(ctx, 3, []domain.Desk{
		{ID: 1, Name: "У окна"},
		{ID: 2, Name: "Стол 2"},
		{ID: 3, Name: "Переговорка"},
	}))

	n, err := repo.GetNumDesks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// повторный вызов обновляет имена
	require.NoError(t, repo.SetDesks(ctx, 2, []domain.Desk{
		{ID: 1, Name: "Угловой"},
		{ID: 2, Name: "Стол 2"},
	}))

	desks, err := repo.ListDesks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Desk{
		{ID: 1, Name: "Угловой"},
		{ID: 2, Name: "Стол 2"},
		{ID: 3, Name: "Переговорка"},
	}, desks)

	n, err = repo.GetNumDesks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
