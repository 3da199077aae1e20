package pg

import (
	"context"
	"fmt"
)

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL,
	operands   DOUBLE PRECISION[] NOT NULL,
	operator   VARCHAR(1) NOT NULL,
	result     DOUBLE PRECISION NOT NULL,
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS operations_email_created_at_idx ON operations (email, created_at DESC);
`

// Migrate создаёт таблицу operations и индекс, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createOperationsTable); err != nil {
		return fmt.Errorf("migrate operations: %w", err)
	}
	return nil
}
