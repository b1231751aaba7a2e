package session

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/google/uuid"
)

// Info describes a live session and the current state of its machine.
type Info struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Input     string           `json:"input"`
	CreatedAt time.Time        `json:"created_at"`
	Snapshot  machine.Snapshot `json:"snapshot"`
}

// Store owns live machines between requests. Do runs fn with exclusive access
// to the session's machine, so steps on one session never interleave.
type Store interface {
	Create(ctx context.Context, name, input string, m *machine.Machine) (Info, error)
	Get(ctx context.Context, id uuid.UUID) (Info, error)
	Do(ctx context.Context, id uuid.UUID, fn func(s *Session) error) (Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Info, error)
}
