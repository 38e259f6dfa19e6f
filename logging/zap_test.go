package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testNewZapLoggerNil(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DefaultLogger(), NewZapLogger(nil))
}

func testNewZapLoggerKeyvals(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		core, entries = observer.New(zap.InfoLevel)
		logger        = NewZapLogger(zap.New(core))
	)

	require.NoError(logger.Log("op", "wait", "milestone", "enter"))
	require.Equal(1, entries.Len())

	fields := entries.All()[0].ContextMap()
	assert.Equal("wait", fields["op"])
	assert.Equal("enter", fields["milestone"])
}

func testNewZapLoggerOddKeyvals(t *testing.T) {
	var (
		assert = assert.New(t)

		core, entries = observer.New(zap.InfoLevel)
		logger        = NewZapLogger(zap.New(core))
	)

	// the dangling key is dropped rather than panicking
	assert.NoError(logger.Log("op", "signal", "dangling"))
	assert.Equal(1, entries.Len())
}

func TestNewZapLogger(t *testing.T) {
	t.Run("Nil", testNewZapLoggerNil)
	t.Run("Keyvals", testNewZapLoggerKeyvals)
	t.Run("OddKeyvals", testNewZapLoggerOddKeyvals)
}
