package xmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testOptionsDefaults(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options)} {
		assert.Equal(DefaultNamespace, o.namespace())
		assert.Equal(DefaultSubsystem, o.subsystem())
		assert.Empty(o.metrics())
	}
}

func testOptionsCustom(t *testing.T) {
	var (
		assert = assert.New(t)
		o      = &Options{
			Namespace: "custom",
			Subsystem: "this is a subsystem",
			Metrics: []Metric{
				{Name: "adhoc", Type: CounterType},
			},
		}
	)

	assert.Equal("custom", o.namespace())
	assert.Equal("this is a subsystem", o.subsystem())
	assert.Len(o.metrics(), 1)
}

func TestOptions(t *testing.T) {
	t.Run("Defaults", testOptionsDefaults)
	t.Run("Custom", testOptionsCustom)
}
