package ui

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControl_BeginEnd(t *testing.T) {
	c := NewControl("Analyze", "Analyzing...")
	assert.Equal(t, "Analyze", c.Label())

	require.True(t, c.Begin())
	assert.True(t, c.Busy())
	assert.Equal(t, "Analyzing...", c.Label())
	assert.False(t, c.Begin(), "second submission must be refused")

	c.End()
	assert.False(t, c.Busy())
	assert.Equal(t, "Analyze", c.Label())
}

func TestControl_EndRestoresAfterPanic(t *testing.T) {
	c := NewControl("Log in", "Logging in...")

	func() {
		defer func() { _ = recover() }()
		require.True(t, c.Begin())
		defer c.End()
		panic("handler failed")
	}()

	assert.Equal(t, "Log in", c.Label())
	assert.True(t, c.Begin())
}

func TestControl_OnlyOneConcurrentBegin(t *testing.T) {
	c := NewControl("a", "b")
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Begin() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
}

func TestControl_SetLabels(t *testing.T) {
	c := NewControl("Analyze", "Analyzing...")
	c.SetLabels("Анализировать", "Анализ...")
	assert.Equal(t, "Анализировать", c.Label())
}
