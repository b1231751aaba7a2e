package es

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/turing-nlp/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorer_Integration(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses:   []string{container.Address},
		IndexPrefix: "tm-test",
	})
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.Healthy(ctx))

	t.Run("ensure indices is idempotent", func(t *testing.T) {
		assert.NoError(t, s.EnsureIndices(ctx))
	})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		id, err := s.SaveRun(ctx, domain.Run{
			Definition: "parity",
			Input:      "01",
			Status:     machine.Rejected,
			Steps:      i,
			FinalState: "q_reject",
			Tape:       []string{"0", "1"},
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("get", func(t *testing.T) {
		run, err := s.GetRun(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, 1, run.Steps)
		assert.Equal(t, machine.Rejected, run.Status)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := s.GetRun(ctx, uuid.New())
		var nf *apperr.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("list newest first", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, ids[2], res.Items[0].ID)
		assert.True(t, res.HasMore)
	})

	t.Run("huge page is empty", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: pagination.MaxPage + 1, Size: 20})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.False(t, res.HasMore)
	})

	t.Run("save tokenization", func(t *testing.T) {
		id, err := s.SaveTokenization(ctx, domain.Tokenization{Text: "Alice", Tokens: []string{"Alice"}})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}
