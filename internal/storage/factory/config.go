package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/es"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/pg"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/config/env"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/utils"
)

const defaultIndexPrefix = "turing"

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads STORAGE_TYPE and the backend settings it selects.
// An unset STORAGE_TYPE means in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if storageType != storage.ES && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	var esCfg *es.ClientConfig
	if storageType == storage.ES {
		esCfg = &es.ClientConfig{
			Addresses:   utils.SplitTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexPrefix: env.String("ES_INDEX_PREFIX", defaultIndexPrefix),
			Username:    os.Getenv("ES_USERNAME"),
			Password:    os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		maxConns, err := env.Int("PG_MAX_CONNS", 0)
		if err != nil {
			return nil, err
		}
		pgCfg = &pg.PoolConfig{
			ConnStr:  os.Getenv("PG_CONNECTION_STRING"),
			MaxConns: int32(maxConns),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
