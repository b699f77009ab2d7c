package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dieta/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dieta.log")
	l, err := New(config.LoggingConfig{Level: "warn", File: path}, false)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kept")
	assert.NotContains(t, string(b), "dropped")
}

func TestNew_VerboseAndBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dieta.log")
	l, err := New(config.LoggingConfig{Level: "error", File: path}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = New(config.LoggingConfig{Level: "loud", File: path}, false)
	assert.Error(t, err)
}
