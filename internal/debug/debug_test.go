package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	type tc struct {
		set     bool
		wantLog bool
	}

	tests := map[string]tc{
		"unset disables logging": {set: false, wantLog: false},
		"set opens file":         {set: true, wantLog: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "debug.log")
			if tt.set {
				t.Setenv(EnvVar, path)
			} else {
				t.Setenv(EnvVar, "")
				os.Unsetenv(EnvVar)
			}

			logger, closer, err := FromEnv()
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			if (logger != nil) != tt.wantLog {
				t.Fatalf("logger present = %v, want %v", logger != nil, tt.wantLog)
			}
			if logger == nil {
				return
			}

			logger.Debug("render pass", "pass", 3)
			if err := closer.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if !strings.Contains(string(data), "pass=3") {
				t.Fatalf("log file missing record: %q", data)
			}
		})
	}
}
