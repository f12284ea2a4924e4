package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5000.0, cfg.DefaultRadius)
	assert.Equal(t, 36, cfg.CircleVertices)
	assert.Equal(t, "ff0000", cfg.Style.LineColor)
	assert.NotEmpty(t, cfg.ExclusionMarkers)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
style:
  line_color: "0000ff"
  line_width: 2
circle_vertices: 72
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0000ff", cfg.Style.LineColor)
	assert.Equal(t, 2.0, cfg.Style.LineWidth)
	assert.Equal(t, 72, cfg.CircleVertices)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5000.0, cfg.DefaultRadius)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
