package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

// userEmail возвращает уникальный для теста email, чтобы подтесты не видели записи друг друга.
func userEmail(t *testing.T, who string) string {
	name := strings.NewReplacer("/", ".", "_", ".").Replace(strings.ToLower(t.Name()))
	return who + "+" + name + "@example.com"
}

func newOperation(email string, result float64, at time.Time) domain.Operation {
	return domain.Operation{
		Email:     email,
		Operands:  []float64{result, 0},
		Operator:  domain.OpAdd,
		Result:    result,
		CreatedAt: at.UTC().Truncate(time.Millisecond),
	}
}

// RunStoreSuite проверяет общий контракт ports.IOperationStore на конкретном бэкенде.
func RunStoreSuite(t *testing.T, store ports.IOperationStore) {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("create and list newest first", func(t *testing.T) {
		email := userEmail(t, "alice")
		var ids []string
		for i := 0; i < 3; i++ {
			id, err := store.Create(ctx, newOperation(email, float64(i), base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
			require.NotEmpty(t, id)
			ids = append(ids, id)
		}

		list, err := store.ListByEmail(ctx, email)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, ids[2], list[0].ID)
		assert.Equal(t, ids[0], list[2].ID)
		assert.Equal(t, 2.0, list[0].Result)
		assert.Equal(t, []float64{2, 0}, list[0].Operands)
		assert.Equal(t, domain.OpAdd, list[0].Operator)
		assert.Equal(t, email, list[0].Email)
		assert.False(t, list[0].IsDeleted)
		assert.WithinDuration(t, base.Add(2*time.Minute), list[0].CreatedAt, time.Millisecond)
	})

	t.Run("list is scoped by email", func(t *testing.T) {
		alice := userEmail(t, "alice")
		bob := userEmail(t, "bob")
		_, err := store.Create(ctx, newOperation(alice, 1, base))
		require.NoError(t, err)

		list, err := store.ListByEmail(ctx, bob)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("mark deleted hides record and is idempotent", func(t *testing.T) {
		email := userEmail(t, "alice")
		keep, err := store.Create(ctx, newOperation(email, 1, base))
		require.NoError(t, err)
		drop, err := store.Create(ctx, newOperation(email, 2, base.Add(time.Minute)))
		require.NoError(t, err)

		op, err := store.MarkDeleted(ctx, email, drop)
		require.NoError(t, err)
		assert.Equal(t, drop, op.ID)
		assert.True(t, op.IsDeleted)

		list, err := store.ListByEmail(ctx, email)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, keep, list[0].ID)

		again, err := store.MarkDeleted(ctx, email, drop)
		require.NoError(t, err)
		assert.True(t, again.IsDeleted)
	})

	t.Run("mark deleted requires owner", func(t *testing.T) {
		alice := userEmail(t, "alice")
		bob := userEmail(t, "bob")
		id, err := store.Create(ctx, newOperation(alice, 1, base))
		require.NoError(t, err)

		_, err = store.MarkDeleted(ctx, bob, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		list, err := store.ListByEmail(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("mark deleted unknown id", func(t *testing.T) {
		_, err := store.MarkDeleted(ctx, userEmail(t, "alice"), "no-such-id")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("mark all deleted", func(t *testing.T) {
		alice := userEmail(t, "alice")
		bob := userEmail(t, "bob")
		for i := 0; i < 2; i++ {
			_, err := store.Create(ctx, newOperation(alice, float64(i), base.Add(time.Duration(i)*time.Second)))
			require.NoError(t, err)
		}
		_, err := store.Create(ctx, newOperation(bob, 7, base))
		require.NoError(t, err)

		n, err := store.MarkAllDeleted(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		list, err := store.ListByEmail(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = store.ListByEmail(ctx, bob)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = store.MarkAllDeleted(ctx, alice)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("mark all deleted without history", func(t *testing.T) {
		_, err := store.MarkAllDeleted(ctx, userEmail(t, "nobody"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
