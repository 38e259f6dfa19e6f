package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func testOptionsOutputStdout(t *testing.T) {
	assert := assert.New(t)

	// nil options and the sentinel file name both write to stdout
	for _, o := range []*Options{nil, {File: StdoutFile}} {
		output := o.output()
		assert.NotNil(output)
		_, err := output.Write([]byte("expected output: written to stdout\n"))
		assert.NoError(err)
	}
}

func testOptionsOutputRolling(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		o       = &Options{
			File:       "handoff.log",
			MaxSize:    17,
			MaxAge:     30,
			MaxBackups: 5,
		}
	)

	rolling, ok := o.output().(*lumberjack.Logger)
	require.True(ok)
	assert.Equal(o.File, rolling.Filename)
	assert.Equal(o.MaxSize, rolling.MaxSize)
	assert.Equal(o.MaxAge, rolling.MaxAge)
	assert.Equal(o.MaxBackups, rolling.MaxBackups)
}

func testOptionsFactoryLogfmt(t *testing.T) {
	var (
		assert = assert.New(t)
		output bytes.Buffer
	)

	// logfmt is the default, for nil options and for JSON: false
	for _, o := range []*Options{nil, new(Options)} {
		output.Reset()
		logger := o.loggerFactory()(&output)
		assert.NoError(logger.Log("format", "logfmt"))
		assert.Equal("format=logfmt\n", output.String())
	}
}

func testOptionsFactoryJSON(t *testing.T) {
	var (
		assert = assert.New(t)
		output bytes.Buffer
		o      = &Options{JSON: true}
	)

	logger := o.loggerFactory()(&output)
	assert.NoError(logger.Log("format", "json"))
	assert.True(strings.HasPrefix(output.String(), "{"))
	assert.Contains(output.String(), `"format":"json"`)
}

func testOptionsLevel(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options)} {
		assert.Empty(o.level())
	}

	assert.Equal("warn", (&Options{Level: "warn"}).level())
}

func TestOptions(t *testing.T) {
	t.Run("OutputStdout", testOptionsOutputStdout)
	t.Run("OutputRolling", testOptionsOutputRolling)
	t.Run("FactoryLogfmt", testOptionsFactoryLogfmt)
	t.Run("FactoryJSON", testOptionsFactoryJSON)
	t.Run("Level", testOptionsLevel)
}
