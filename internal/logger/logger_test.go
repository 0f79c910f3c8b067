package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("Should build a json logger at the requested level", func(t *testing.T) {
		log, err := New("warn", "json")
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})
	t.Run("Should build a console logger", func(t *testing.T) {
		log, err := New("debug", "console")
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})
	t.Run("Should accept mixed-case levels", func(t *testing.T) {
		_, err := New(" INFO ", "json")
		require.NoError(t, err)
	})
	t.Run("Should reject an unknown level", func(t *testing.T) {
		_, err := New("loud", "json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse log level")
	})
	t.Run("Should reject an unknown format", func(t *testing.T) {
		_, err := New("info", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported log format")
	})
}
