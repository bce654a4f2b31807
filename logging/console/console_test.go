package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	diff "github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEqualText(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	edits := myers.ComputeEdits(``, expected, actual)
	t.Fatalf("text mismatch:\n%s", diff.ToUnified(`expected`, `actual`, expected, edits))
}

func TestHandle_forceNoColor_plainLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, logging.ForceNoColor, allocator.DefaultAllocator())

	h.Handle(logging.Record{
		Severity:  logging.Warn,
		Name:      "my.logger",
		Message:   "danger",
		Timestamp: time.Unix(1, 0),
	})

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\033[")
	assertEqualText(t, "[WARN] [0000000001.000000000] [my.logger]: danger\n", out)
}

func TestHandle_forceColor_wrapsAnsi(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, logging.ForceColor, allocator.DefaultAllocator())

	h.Handle(logging.Record{
		Severity:  logging.Error,
		Name:      "n",
		Message:   "oops",
		Timestamp: time.Unix(1, 0),
	})

	out := buf.String()
	require.Contains(t, out, ansiRed)
	require.Contains(t, out, ansiReset)
}

func TestHandle_unknownSeverityIsRejected(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, logging.ForceNoColor, allocator.DefaultAllocator())
	h.Handle(logging.Record{Severity: logging.Level(7), Message: "x"})
	assert.Empty(t, buf.String())
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, ansiGreen, colorFor(logging.Debug))
	assert.Equal(t, "", colorFor(logging.Info))
	assert.Equal(t, ansiYellow, colorFor(logging.Warn))
	assert.Equal(t, ansiRed, colorFor(logging.Error))
	assert.Equal(t, ansiRed, colorFor(logging.Fatal))
}

func TestRegisterDefaultOutputHandler_wiresIntoInitialize(t *testing.T) {
	require.NoError(t, logging.Shutdown())
	require.NoError(t, logging.Initialize())
	t.Cleanup(func() { _ = logging.Shutdown() })

	assert.NotNil(t, logging.GetOutputHandler())
}
