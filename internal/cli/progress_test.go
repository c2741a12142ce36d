package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/flightdata"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar_HubSearch(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressBar(&buf)

	chart := award.NewChart()
	source := flightdata.NewFallbackSource(nil, flightdata.NewMockGenerator(chart))
	constructor := routing.NewConstructor(source, chart, routing.DefaultOptions()).WithProgress(progress)

	routes := constructor.LayoverRoutes(context.Background(), "JFK", "LAX", travelDate, nil)

	require.Len(t, routes, 3)
	assert.Contains(t, buf.String(), "3/3")
	assert.Nil(t, progress.bar, "finish releases the bar")
}

func TestProgressBar_IgnoresTicksBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressBar(&buf)

	progress.Advance("ATL")
	progress.Finish()

	assert.Empty(t, buf.String())
}

func TestInterruptHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewInterruptHandler(&buf)

	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent)
	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled before a signal")
	default:
	}
	cancel()
	<-ctx.Done()
	assert.False(t, handler.WasInterrupted(), "canceling the parent is not an interrupt")

	handler.interrupt()
	handler.interrupt()
	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Search interrupted!")))
}
