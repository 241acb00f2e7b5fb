package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineRecorder struct {
	lines []string
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	r.lines = append(r.lines, string(p))
	return len(p), nil
}

func TestDeferredWriter_FlushByLine(t *testing.T) {
	var d DeferredWriter
	_, _ = d.Write([]byte(`{"level":"info","message":"one"}` + "\n"))
	_, _ = d.Write([]byte(`{"level":"warn","message":"two"}` + "\n"))

	rec := &lineRecorder{}
	require.NoError(t, d.Flush(rec))
	assert.Equal(t, []string{
		`{"level":"info","message":"one"}` + "\n",
		`{"level":"warn","message":"two"}` + "\n",
	}, rec.lines)

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}
