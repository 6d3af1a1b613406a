package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dashboard"
)

// Compile-time interface check.
var _ Formatter = (*stubFormatter)(nil)

type stubFormatter struct{}

func (s *stubFormatter) Name() string                                        { return "stub" }
func (s *stubFormatter) Format(_ *dashboard.RenderResult, _ io.Writer) error { return nil }

func TestFormatterInterface(t *testing.T) {
	var f Formatter = &stubFormatter{}
	assert.Equal(t, "stub", f.Name())

	var buf bytes.Buffer
	assert.NoError(t, f.Format(nil, &buf))
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "pdf"`)
	assert.Contains(t, err.Error(), "html, html-dir, json, markdown")
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"html", "html-dir", "json", "markdown"}, FormatNames())
}
