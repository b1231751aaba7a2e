package in_mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock   sync.RWMutex
	runs          map[uuid.UUID]domain.Run
	runOrder      []uuid.UUID
	tokenizations map[uuid.UUID]domain.Tokenization
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		runs:          make(map[uuid.UUID]domain.Run),
		tokenizations: make(map[uuid.UUID]domain.Tokenization),
	}
}

func (s *InMemStorer) SaveRun(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		s.runOrder = append(s.runOrder, run.ID)
	}
	s.runs[run.ID] = run
	slog.Debug("Saving run to in-memory storage", "id", run.ID, "definition", run.Definition, "status", run.Status)

	return run.ID, nil
}

func (s *InMemStorer) SaveTokenization(ctx context.Context, t domain.Tokenization) (uuid.UUID, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.tokenizations[t.ID] = t
	slog.Debug("Saving tokenization to in-memory storage", "id", t.ID, "tokens", len(t.Tokens))

	return t.ID, nil
}

func (s *InMemStorer) GetRun(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, apperr.NewNotFound("run", id.String())
	}
	return &run, nil
}

// ListRuns returns runs newest first.
func (s *InMemStorer) ListRuns(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Run], error) {
	page.Normalize()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.runOrder)
	offset := page.Offset()

	items := make([]domain.Run, 0, min(page.Size, total))
	if offset >= total {
		return pagination.NewOffsetResult(items, int64(total), page), nil
	}
	for i := total - 1 - offset; i >= 0 && len(items) < page.Size; i-- {
		items = append(items, s.runs[s.runOrder[i]])
	}

	return pagination.NewOffsetResult(items, int64(total), page), nil
}

// GetTokenization returns a stored tokenization by id.
func (s *InMemStorer) GetTokenization(id uuid.UUID) (domain.Tokenization, bool) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	t, ok := s.tokenizations[id]
	return t, ok
}

func (s *InMemStorer) Close() {}

var _ storage.Store = (*InMemStorer)(nil)
