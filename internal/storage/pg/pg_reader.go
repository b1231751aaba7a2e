package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const runColumns = `id, definition, session_id, input, status, steps, final_state, tape, created_at`

func (s *Storer) GetRun(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	row := s.db.QueryRow(ctx, `SELECT `+runColumns+` FROM runs WHERE id = $1`, id)

	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound("run", id.String())
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Storer) ListRuns(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Run], error) {
	page.Normalize()
	slog.Debug("Listing runs from pg", "page", page.Page, "size", page.Size)

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM runs`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		page.Size, page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.Run, 0, page.Size)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return pagination.NewOffsetResult(runs, total, page), nil
}

func scanRun(row pgx.Row) (*domain.Run, error) {
	var (
		run       domain.Run
		sessionID *uuid.UUID
		status    string
		tapeJSON  []byte
	)

	if err := row.Scan(
		&run.ID,
		&run.Definition,
		&sessionID,
		&run.Input,
		&status,
		&run.Steps,
		&run.FinalState,
		&tapeJSON,
		&run.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	if sessionID != nil {
		run.SessionID = *sessionID
	}
	if err := run.Status.UnmarshalText([]byte(status)); err != nil {
		return nil, fmt.Errorf("failed to decode run status: %w", err)
	}
	if err := json.Unmarshal(tapeJSON, &run.Tape); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tape: %w", err)
	}

	return &run, nil
}

var _ storage.Store = (*Storer)(nil)
