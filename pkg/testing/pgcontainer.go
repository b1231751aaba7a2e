package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:17.5"

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string
	// MigrationsDir defaults to db/migrations at the module root.
	MigrationsDir string
}

// NewPGContainerWithCleanup starts a migrated postgres for t and skips the
// test in -short mode or when no container runtime is reachable.
func NewPGContainerWithCleanup(ctx context.Context, t *testing.T) *PGContainer {
	t.Helper()
	requireContainers(t, "postgres")

	c, err := NewPGContainer(ctx, PGConfig{
		Database: "turing_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		t.Fatalf("failed to create postgres container: %v", err)
	}

	t.Cleanup(func() { terminate(t, c.Container, "postgres") })
	return c
}

func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	dir := cfg.MigrationsDir
	if dir == "" {
		dir = defaultMigrationsDir()
	}
	script, err := MigrationScript(dir)
	if err != nil {
		return nil, err
	}

	initFile, err := os.CreateTemp("", "migrations-*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(initFile.Name())

	if _, err := initFile.WriteString(script); err != nil {
		initFile.Close()
		return nil, fmt.Errorf("failed to write migrations: %w", err)
	}
	if err := initFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	c, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(initFile.Name()),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{Container: c, ConnString: connStr}, nil
}

// MigrationScript concatenates the *.up.sql files in dir in name order.
func MigrationScript(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return "", fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no migrations found in %s", dir)
	}
	slices.Sort(files)

	parts := make([]string, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("failed to read migration file %s: %w", f, err)
		}
		parts = append(parts, strings.TrimRight(string(content), "; \n\t")+";\n")
	}
	return strings.Join(parts, "\n"), nil
}

func defaultMigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations")
}
