package storage

import (
	"context"

	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/google/uuid"
)

type Storer interface {
	SaveRun(ctx context.Context, run domain.Run) (uuid.UUID, error)
	SaveTokenization(ctx context.Context, t domain.Tokenization) (uuid.UUID, error)
}

type Reader interface {
	GetRun(ctx context.Context, id uuid.UUID) (*domain.Run, error)
	ListRuns(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Run], error)
}

// Store is a run-history backend.
type Store interface {
	Storer
	Reader
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
