package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, lvl, err := New("production", "")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl.Level())
	assert.NotNil(t, logger)

	_, lvl, err = New("development", "")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl.Level())

	_, lvl, err = New("production", "warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl.Level())

	lvl.SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, lvl.Level())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("production", "loud")
	assert.Error(t, err)
}
