package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "MATCHGEO_DEBUG"

// Open opens (or creates) the log file at path for appending, creating its
// directory when needed. An empty path means "debug.log".
func Open(path string) (*os.File, error) {
	if path == "" {
		path = "debug.log"
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create debug log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}

// NewHandler returns a debug-level text handler writing to w.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// FromEnv returns a logger writing to the file named by MATCHGEO_DEBUG, and
// the file so the caller can close it. Both are nil when the variable is unset.
func FromEnv() (*slog.Logger, io.Closer, error) {
	path, ok := os.LookupEnv(EnvVar)
	if !ok {
		return nil, nil, nil
	}
	f, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(NewHandler(f)), f, nil
}
