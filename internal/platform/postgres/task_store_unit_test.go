package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
)

// failingDB is a store.DBTX that fails the test if any query reaches it.
type failingDB struct {
	t *testing.T
}

func (f failingDB) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	f.t.Fatal("unexpected ExecContext call")
	return nil, nil
}

func (f failingDB) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	f.t.Fatal("unexpected PrepareContext call")
	return nil, nil
}

func (f failingDB) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	f.t.Fatal("unexpected QueryContext call")
	return nil, nil
}

func (f failingDB) QueryRowContext(context.Context, string, ...any) *sql.Row {
	f.t.Fatal("unexpected QueryRowContext call")
	return nil
}

func TestNewPostgresTaskStore_NilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		postgres.NewPostgresTaskStore(nil, nil)
	})
}

func TestPostgresTaskStore_ValidationBeforeQuery(t *testing.T) {
	t.Parallel()

	s := postgres.NewPostgresTaskStore(failingDB{t: t}, nil)
	ctx := context.Background()

	err := s.Create(ctx, &domain.Task{ID: uuid.New(), Title: "", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	blank := "  "
	_, err = s.Update(ctx, uuid.New(), domain.TaskPatch{Title: &blank})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}
