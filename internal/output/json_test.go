package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dashboard"
)

func TestJSONFormatter_Name(t *testing.T) {
	assert.Equal(t, "json", NewJSONFormatter().Name())
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(urban2010(t), &buf))

	var got dashboard.RenderResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2010, got.Selection.Year)
	require.Len(t, got.Panels, 4)
	require.NotNil(t, got.Panels[0].Figure)
	assert.Equal(t, "choropleth", got.Panels[0].Figure.Data[0].Type)
	assert.Contains(t, buf.String(), "\n  ", "pretty-printed for non-file writers")
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Compact: true}
	require.NoError(t, f.Format(urban2010(t), &buf))

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, `"locationmode":"country names"`)
	assert.Contains(t, out, `"showcoastlines":true`)
}

func TestJSONFormatter_NullForMissing(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Compact: true}
	require.NoError(t, f.Format(urban2010(t), &buf))
	assert.Contains(t, buf.String(), `"z":[52.1,61,null,10]`)
}

func TestJSONFormatter_Deterministic(t *testing.T) {
	res := urban2010(t)
	var a, b bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(res, &a))
	require.NoError(t, NewJSONFormatter().Format(res, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestJSONFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, NewJSONFormatter().Format(nil, &buf))
}
