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

	assert.Equal(t, "zhang-suen", cfg.Thinning)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, 100, cfg.Pipeline.Threshold)
	assert.Equal(t, 500, cfg.Pipeline.MaxPoints)
	assert.Equal(t, 0.001, cfg.Pipeline.MinQuality)
	assert.Equal(t, 10, cfg.Pipeline.MinDistance)
	assert.Equal(t, 20, cfg.Pipeline.Clusters)
	assert.Equal(t, 50, cfg.Pipeline.VoteThreshold)
	assert.Equal(t, 50, cfg.Pipeline.MinLineLength)
	assert.Equal(t, 10, cfg.Pipeline.MaxLineGap)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/floorplan.toml")
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floorplan.toml")
	content := `
thinning = "guo-hall"
output_dir = "/tmp/out"

[pipeline]
threshold = 120
clusters = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "guo-hall", cfg.Thinning)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 120, cfg.Pipeline.Threshold)
	assert.Equal(t, 8, cfg.Pipeline.Clusters)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 500, cfg.Pipeline.MaxPoints)
	assert.Equal(t, 50, cfg.Pipeline.VoteThreshold)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("thinning = [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(envThinning, "guo-hall")
	t.Setenv(envOutputDir, "/var/renders")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "guo-hall", cfg.Thinning)
	assert.Equal(t, "/var/renders", cfg.OutputDir)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floorplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(`thinning = "zhang-suen"`), 0o644))

	t.Setenv(envThinning, "guo-hall")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "guo-hall", cfg.Thinning)
}
