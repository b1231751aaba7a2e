package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/es"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/turing-nlp/pkg/server"
)

// NewStore opens the run-history backend selected by cfg together with a
// health checker for it.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, pkgserver.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		s, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		s, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), pkgserver.Static(true), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
