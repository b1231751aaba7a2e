package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParity(t *testing.T, input string) *machine.Machine {
	t.Helper()
	m, err := machine.New(machine.ParityConfig())
	require.NoError(t, err)
	m.LoadString(input)
	return m
}

func TestInMemStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore()

	info, err := store.Create(ctx, "parity", "0", newParity(t, "0"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, info.ID)
	assert.Equal(t, "q_start", info.Snapshot.State)

	t.Run("get", func(t *testing.T) {
		got, err := store.Get(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, info.ID, got.ID)
		assert.Equal(t, "0", got.Input)
	})

	t.Run("do mutates the owned machine", func(t *testing.T) {
		var status machine.Status
		got, err := store.Do(ctx, info.ID, func(s *Session) error {
			status = s.Machine.Step()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, machine.Continue, status)
		assert.Equal(t, "q_even", got.Snapshot.State)
		assert.Equal(t, 1, got.Snapshot.Head)
	})

	t.Run("do propagates callback errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := store.Do(ctx, info.ID, func(s *Session) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		var nf *apperr.NotFoundError
		assert.True(t, errors.As(err, &nf))

		_, err = store.Do(ctx, uuid.New(), func(s *Session) error { return nil })
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("list and delete", func(t *testing.T) {
		second, err := store.Create(ctx, "other", "1", newParity(t, "1"))
		require.NoError(t, err)

		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, info.ID, all[0].ID)

		require.NoError(t, store.Delete(ctx, second.ID))
		all, err = store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		var nf *apperr.NotFoundError
		assert.True(t, errors.As(store.Delete(ctx, second.ID), &nf))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Do(cctx, info.ID, func(s *Session) error {
			t.Fatal("callback must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestInMemStore_ConcurrentSteps(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore()

	m, err := machine.New(machine.Config{
		States:      []string{"q"},
		TapeSymbols: []string{"_"},
		Start:       "q",
		Rules:       []machine.Rule{{State: "q", Read: "_", Next: "q", Write: "_", Move: machine.Left}},
	})
	require.NoError(t, err)
	info, err := store.Create(ctx, "left", "", m)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Do(ctx, info.ID, func(s *Session) error {
				s.Machine.Step()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Snapshot.Steps)
	assert.Equal(t, machine.InputPadding+50, len(got.Snapshot.Tape))
	assert.Equal(t, 0, got.Snapshot.Head)
}
