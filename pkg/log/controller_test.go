package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController(t *testing.T) {
	OutputStderr.Store(false)
	defer OutputStderr.Store(true)

	level := Level()
	defer SetLevel(level)

	path := filepath.Join(t.TempDir(), "test.log")

	ctr := NewController()
	ctr.Set(Logcat{Level: slog.LevelDebug, Save: true}, path)
	assert.Equal(t, path, ctr.Path())
	assert.Equal(t, slog.LevelDebug, Level())

	Debug("saved", "n", 3)

	ctr.Set(Logcat{Level: slog.LevelInfo}, path)
	assert.Empty(t, ctr.Path())
	require.NoError(t, ctr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=saved n=3")
}
