package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db   *pgxpool.Pool
	pool *ConnectionPool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn, pool: pool}, nil
}

func (s *Storer) SaveRun(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tapeJSON, err := json.Marshal(nonNil(run.Tape))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tape: %w", err)
	}

	cmd := `
        INSERT INTO runs (id, definition, session_id, input, status, steps, final_state, tape, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE SET
            status = EXCLUDED.status,
            steps = EXCLUDED.steps,
            final_state = EXCLUDED.final_state,
            tape = EXCLUDED.tape
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		run.ID,
		run.Definition,
		nullableUUID(run.SessionID),
		run.Input,
		run.Status.String(),
		run.Steps,
		run.FinalState,
		tapeJSON,
		run.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveTokenization(ctx context.Context, t domain.Tokenization) (uuid.UUID, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	tokensJSON, err := json.Marshal(nonNil(t.Tokens))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}
	posJSON, err := json.Marshal(nonNil(t.POS))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal pos tags: %w", err)
	}
	entitiesJSON, err := json.Marshal(nonNil(t.Entities))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal entities: %w", err)
	}

	cmd := `
        INSERT INTO tokenizations (id, text, tokens, pos, entities, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	if err := s.db.QueryRow(ctx, cmd, t.ID, t.Text, tokensJSON, posJSON, entitiesJSON, t.CreatedAt).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert tokenization: %w", err)
	}

	return id, nil
}

func (s *Storer) Close() {
	s.pool.Close()
}

func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
