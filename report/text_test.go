package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/0xsoniclabs/bingo/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCountText_Example(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCountText(&buf, stats.NewHistogram([]uint8{5, 5, 10})))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, stats.NumBins)
	assert.Equal(t, " 0: 0", lines[0])
	assert.Equal(t, " 5: 2", lines[5])
	assert.Equal(t, "10: 1", lines[10])
	assert.Equal(t, "74: 0", lines[74])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteCountText_Empty(t *testing.T) {
	text := string(CountText(stats.NewHistogram(nil)))

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, stats.NumBins)
	for i, line := range lines {
		assert.True(t, strings.HasSuffix(line, ": 0"), "line %d: %q", i, line)
	}
}

func TestWriteCountText_UpperBoundaryIsNotReported(t *testing.T) {
	text := string(CountText(stats.NewHistogram([]uint8{75, 75})))
	assert.NotContains(t, text, "75:")
	assert.Equal(t, 0, strings.Count(text, ": 2"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteCountText_WriteError(t *testing.T) {
	err := WriteCountText(failingWriter{}, stats.NewHistogram(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}
