package plot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRenderCounts verifies that a histogram renders as HTML carrying
// the chart runtime, the title and every outcome label.
func TestRenderCounts(t *testing.T) {
	counts := backend.Counts{
		"00000000": 253,
		"01000000": 245,
		"10000000": 260,
		"11000000": 242,
	}

	var buf bytes.Buffer
	err := plot.RenderCounts(&buf, "N=15 a=7", counts)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "echarts", "chart runtime must be referenced")
	assert.Contains(t, html, "N=15 a=7", "title must appear")
	assert.Contains(t, html, "01000000", "outcome labels must appear")
	assert.Contains(t, html, "1000 shots", "subtitle totals the shots")
}

// TestRenderCounts_Empty verifies the no-data sentinel.
func TestRenderCounts_Empty(t *testing.T) {
	err := plot.RenderCounts(&bytes.Buffer{}, "empty", backend.Counts{})
	assert.ErrorIs(t, err, plot.ErrNoData)
}

// TestRenderCountsFile verifies the file-writing wrapper.
func TestRenderCountsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.html")
	counts := backend.Counts{"01": 2, "10": 3}

	require.NoError(t, plot.RenderCountsFile(path, "tiny", counts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "tiny")
}
