package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recdict.log")

	cleanup, err := Setup(Config{Level: "debug", Format: "text", File: path})
	require.NoError(t, err)

	L().Debug("dict.cycle", "model", "store.Order")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dict.cycle")
	assert.Contains(t, string(data), "model=store.Order")

	L().Info("after cleanup")

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after cleanup")
}

func TestSetup_Errors(t *testing.T) {
	_, err := Setup(Config{Level: "nope"})
	require.Error(t, err)

	_, err = Setup(Config{Format: "xml"})
	require.Error(t, err)
}
