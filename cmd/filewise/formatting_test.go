package filewise

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderResults_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, "text", []string{"/a", "/b"}))
	assert.Equal(t, "/a\n/b\n", buf.String())

	// Empty format defaults to text
	buf.Reset()
	require.NoError(t, renderResults(&buf, "", []string{"/a"}))
	assert.Equal(t, "/a\n", buf.String())
}

func TestRenderResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, "json", []string{"/a", "/b"}))

	var results []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	assert.Equal(t, []string{"/a", "/b"}, results)
}

func TestRenderResults_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, "yaml", []string{"/a", "/b"}))

	var results []string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &results))
	assert.Equal(t, []string{"/a", "/b"}, results)
}

func TestRenderResults_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, "xml", []string{"/a", "/b"}))

	out := buf.String()
	assert.Contains(t, out, "<results>")
	assert.Contains(t, out, "<item>/a</item>")
	assert.Contains(t, out, "<item>/b</item>")
}

func TestRenderResults_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderResults(&buf, "csv", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderError(t *testing.T) {
	msg := RenderError(errors.New(errors.ErrInvalidMatchType, "bad mode"))
	assert.Contains(t, msg, "INVALID_MATCH_TYPE")
	assert.Contains(t, msg, "bad mode")

	// Plain errors render without a code
	plain := RenderError(assert.AnError)
	assert.Contains(t, plain, assert.AnError.Error())
	assert.NotContains(t, plain, "UNKNOWN")
}
