package in_mem

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_Runs(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	var ids []uuid.UUID
	for i := range 5 {
		id, err := s.SaveRun(ctx, domain.Run{
			Definition: "parity",
			Input:      fmt.Sprintf("%d", i),
			Status:     machine.Accepted,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("get assigns id and timestamp", func(t *testing.T) {
		run, err := s.GetRun(ctx, ids[2])
		require.NoError(t, err)
		assert.Equal(t, "2", run.Input)
		assert.False(t, run.CreatedAt.IsZero())
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := s.GetRun(ctx, uuid.New())
		var nf *apperr.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("list newest first with paging", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.Total)
		assert.True(t, res.HasMore)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "4", res.Items[0].Input)
		assert.Equal(t, "3", res.Items[1].Input)

		res, err = s.ListRuns(ctx, pagination.OffsetRequest{Page: 3, Size: 2})
		require.NoError(t, err)
		assert.False(t, res.HasMore)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "0", res.Items[0].Input)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: 9, Size: 2})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("huge page is empty", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: math.MaxInt, Size: 20})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.False(t, res.HasMore)
		assert.Equal(t, int64(5), res.Total)
	})

	t.Run("defaults for zero request", func(t *testing.T) {
		res, err := s.ListRuns(ctx, pagination.OffsetRequest{})
		require.NoError(t, err)
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 1, res.Page)
	})

	t.Run("resaving keeps position", func(t *testing.T) {
		run, err := s.GetRun(ctx, ids[0])
		require.NoError(t, err)
		run.Steps = 42
		_, err = s.SaveRun(ctx, *run)
		require.NoError(t, err)

		res, err := s.ListRuns(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
		require.NoError(t, err)
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 42, res.Items[4].Steps)
	})
}

func TestInMemStorer_Tokenizations(t *testing.T) {
	s := NewInMemStorer()

	id, err := s.SaveTokenization(context.Background(), domain.Tokenization{
		Text:   "Alice walks",
		Tokens: []string{"Alice", "walks"},
		POS:    []tagging.Tagged{{Token: "Alice", Tag: "NNP"}, {Token: "walks", Tag: "VBZ"}},
	})
	require.NoError(t, err)

	got, ok := s.GetTokenization(id)
	require.True(t, ok)
	assert.Equal(t, []string{"Alice", "walks"}, got.Tokens)
	assert.Equal(t, id, got.ID)
}
