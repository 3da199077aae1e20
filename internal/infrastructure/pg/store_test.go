package pg

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"opsCalc/internal/pkg/testutil"
)

// container — PostgreSQL для тестов пакета, поднимается в TestMain.
var container *testutil.PostgresContainer

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithContainer(m, "postgres", func(ctx context.Context) (testcontainers.Container, error) {
		c, err := testutil.NewPostgresContainer(ctx)
		if err != nil {
			return nil, err
		}
		container = c
		return c.PostgresContainer, nil
	}))
}

// setupStore подключается к тестовому PostgreSQL, накатывает схему и чистит таблицу.
func setupStore(t *testing.T) (*DB, *OperationStore) {
	t.Helper()
	ctx := context.Background()

	db, err := New(ctx, &Config{
		Host:     container.Host,
		Port:     container.Port,
		User:     container.User,
		Password: container.Password,
		DBName:   container.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")
	require.NoError(t, Migrate(ctx, db))
	_, err = db.ExecContext(ctx, "TRUNCATE operations")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, NewOperationStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOperationStore_Contract(t *testing.T) {
	testutil.SkipIfShort(t)

	_, store := setupStore(t)
	testutil.RunStoreSuite(t, store)
}

func TestMigrate_Idempotent(t *testing.T) {
	testutil.SkipIfShort(t)

	db, _ := setupStore(t)
	require.NoError(t, Migrate(context.Background(), db))
}
