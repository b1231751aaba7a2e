package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones that
// are already set. ENV_PATH takes precedence over defaultPath. A missing file
// is only an error when mode is "local" or empty.
func LoadDotEnv(mode, defaultPath string) error {
	path := os.Getenv("ENV_PATH")
	if path == "" {
		path = defaultPath
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		slog.Debug("Loaded .env", "path", path)
		return nil
	case errors.Is(err, fs.ErrNotExist) && mode != "local" && mode != "":
		slog.Debug("No .env file, using process environment", "path", path, "mode", mode)
		return nil
	default:
		return fmt.Errorf("load %s: %w", path, err)
	}
}

// String returns the trimmed value of key, or def when it is unset or blank.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, v)
	}
	return n, nil
}

func Bool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}
