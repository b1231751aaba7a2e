package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationScript(t *testing.T) {
	t.Run("ordered and terminated", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_b.up.sql"), []byte("CREATE TABLE b ()"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_a.up.sql"), []byte("CREATE TABLE a ();\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_a.down.sql"), []byte("DROP TABLE a;"), 0o644))

		script, err := MigrationScript(dir)
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE a ();\n\nCREATE TABLE b ();\n", script)
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := MigrationScript(t.TempDir())
		assert.ErrorContains(t, err, "no migrations found")
	})

	t.Run("repository migrations", func(t *testing.T) {
		script, err := MigrationScript(defaultMigrationsDir())
		require.NoError(t, err)
		assert.Contains(t, script, "runs")
		assert.Contains(t, script, "tokenizations")
	})
}
