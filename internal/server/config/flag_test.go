package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "60", "-e", "local",
			},
			start: &Config{},
			expected: &Config{
				Address:               "127.0.0.1:9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: time.Hour,
				Environment:           "local",
			},
		},
		{
			name:  "unrelated flags are ignored",
			args:  []string{"cmd", "-c", "cfg.json", "-x", "1", "-s", "k"},
			start: &Config{TokenValidityDuration: 90 * time.Second},
			expected: &Config{
				SecretKey:             "k",
				TokenValidityDuration: 90 * time.Second,
			},
		},
		{
			name:        "bad int",
			args:        []string{"cmd", "-t", "forever"},
			start:       &Config{},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := tt.start

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
