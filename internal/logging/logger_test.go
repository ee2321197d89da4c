package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoOutputsIsNop(t *testing.T) {
	t.Parallel()

	l, err := ForTUI("debug", "")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestWritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "termfolio.log")
	l, err := ForTUI("warn", path)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.String("screen", "cv"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), `"severity":"WARN"`)
	require.Contains(t, string(data), `"screen":"cv"`)
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	l, err := New("loud", "stderr")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.InfoLevel))
	require.False(t, l.Core().Enabled(zap.DebugLevel))
}
