package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

func (e *Storer) GetRun(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	res, err := e.client.Get(e.runsIndex, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, apperr.NewNotFound("run", id.String())
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound("run", id.String())
	}

	var doc RunDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run document: %w", err)
	}

	run, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to map run document: %w", err)
	}
	return &run, nil
}

func (e *Storer) ListRuns(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Run], error) {
	page.Normalize()
	slog.Debug("Listing runs from es", "page", page.Page, "size", page.Size)

	countRes, err := e.client.Count().Index(e.runsIndex).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	if int64(page.Offset()) >= countRes.Count {
		return pagination.NewOffsetResult([]domain.Run{}, countRes.Count, page), nil
	}

	sortOrderDesc := sortorder.Desc
	res, err := e.client.Search().
		Index(e.runsIndex).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "index", e.runsIndex)
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}

	runs := make([]domain.Run, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc RunDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run document: %w", err)
		}
		run, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to map run document: %w", err)
		}
		runs = append(runs, run)
	}

	return pagination.NewOffsetResult(runs, countRes.Count, page), nil
}

func (e *Storer) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

var _ storage.Store = (*Storer)(nil)
