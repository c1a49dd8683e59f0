package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/charming-go/pkg/charming/render"
)

func TestFormatDocument(t *testing.T) {
	out, err := formatDocument([]byte(`{"series":[{"type":"bar","data":[1,2]}],"color":["#5470c6"]}`))
	require.NoError(t, err)
	assert.Equal(t, `{
  "series": [
    {
      "type": "bar",
      "data": [
        1,
        2
      ]
    }
  ],
  "color": [
    "#5470c6"
  ]
}
`, string(out))

	_, err = formatDocument([]byte(`{"series":`))
	assert.ErrorIs(t, err, render.ErrInvalidDocument)
}

func TestRenderDocuments(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "bar.json")
	bad := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"series":[{"type":"bar","data":[1]}]}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))

	page, err := render.NewPage(render.DefaultOptions())
	require.NoError(t, err)

	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0o755))

	err = renderDocuments(page, []string{good, bad, filepath.Join(dir, "missing.json")}, out, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrInvalidDocument)
	assert.True(t, strings.Contains(err.Error(), "missing.json"))

	html, err := os.ReadFile(filepath.Join(out, "bar.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `"type":"bar"`)
	assert.NoFileExists(t, filepath.Join(out, "broken.html"))
}

func TestRenderDocumentsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "x.json")
	b := filepath.Join(dir, "b", "x.json")
	for _, p := range []string{a, b} {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(`{"series":[]}`), 0o644))
	}

	page, err := render.NewPage(render.DefaultOptions())
	require.NoError(t, err)

	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0o755))

	err = renderDocuments(page, []string{a, b}, out, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.html")
	assert.NoFileExists(t, filepath.Join(out, "x.html"))
}
