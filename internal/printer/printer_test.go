package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("sent %d", 2)
	p.Errorf("failed")

	assert.Equal(t, Check+" sent 2\n"+Cross+" failed\n", buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestPrinter_FatalError(t *testing.T) {
	var buf bytes.Buffer
	NewPlain(&buf).FatalError(errors.New("channel not found"))

	assert.Equal(t, "╭ Error\n│ channel not found\n╵\n", buf.String())
}

func TestPrinter_FatalErrorValidation(t *testing.T) {
	var errs criterio.FieldErrorsBuilder
	errs = errs.Append("fetch_limit", errors.New("must be between 1 and 100, got 0"))
	err := fmt.Errorf("load config: invalid config: %w", errs.ToError())

	var buf bytes.Buffer
	NewPlain(&buf).FatalError(err)

	out := buf.String()
	assert.Contains(t, out, "╭ Validation Error")
	assert.Contains(t, out, "│ load config: invalid config")
	assert.Contains(t, out, Cross+" fetch_limit: must be between 1 and 100, got 0")
}

func TestPrinter_NilError(t *testing.T) {
	var buf bytes.Buffer
	NewPlain(&buf).FatalError(nil)
	assert.Empty(t, buf.String())
}
