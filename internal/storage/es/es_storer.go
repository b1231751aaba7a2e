package es

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/google/uuid"
)

type Storer struct {
	client             *elasticsearch.TypedClient
	runsIndex          string
	tokenizationsIndex string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:             client,
		runsIndex:          config.runsIndex(),
		tokenizationsIndex: config.tokenizationsIndex(),
	}

	if err := storer.EnsureIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indices exist: %w", err)
	}

	return storer, nil
}

func (e *Storer) SaveRun(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	doc := runToDocument(run)

	res, err := e.client.Index(e.runsIndex).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index run: %w", err)
	}

	slog.Debug("run indexed", "id", doc.ID, "index", e.runsIndex, "result", res.Result)
	return run.ID, nil
}

func (e *Storer) SaveTokenization(ctx context.Context, t domain.Tokenization) (uuid.UUID, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	doc := tokenizationToDocument(t)

	res, err := e.client.Index(e.tokenizationsIndex).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index tokenization: %w", err)
	}

	slog.Debug("tokenization indexed", "id", doc.ID, "index", e.tokenizationsIndex, "result", res.Result)
	return t.ID, nil
}

// Close is a no-op; the HTTP transport has no pooled state to release.
func (e *Storer) Close() {}

func (e *Storer) EnsureIndices(ctx context.Context) error {
	runs := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"definition":  types.NewKeywordProperty(),
			"session_id":  types.NewKeywordProperty(),
			"input":       types.NewKeywordProperty(),
			"status":      types.NewKeywordProperty(),
			"steps":       types.NewIntegerNumberProperty(),
			"final_state": types.NewKeywordProperty(),
			"tape":        types.NewKeywordProperty(),
			"created_at":  types.NewDateProperty(),
		},
	}
	if err := e.ensureIndex(ctx, e.runsIndex, &runs); err != nil {
		return err
	}

	tokenizations := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"text":       types.NewTextProperty(),
			"tokens":     types.NewKeywordProperty(),
			"pos":        taggedProperty(),
			"entities":   taggedProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
	return e.ensureIndex(ctx, e.tokenizationsIndex, &tokenizations)
}

func (e *Storer) ensureIndex(ctx context.Context, name string, mappings *types.TypeMapping) error {
	existsRes, err := e.client.Indices.Exists(name).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", name)
		return nil
	}

	createRes, err := e.client.Indices.Create(name).
		Mappings(mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index %s creation was not acknowledged", name)
	}

	slog.Info("Index created successfully", "index", name)
	return nil
}

func taggedProperty() types.Property {
	obj := types.NewObjectProperty()
	obj.Properties = map[string]types.Property{
		"token": types.NewKeywordProperty(),
		"tag":   types.NewKeywordProperty(),
	}
	return obj
}
