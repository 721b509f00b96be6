package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

func readConfig(t *testing.T, dir string) (string, domain.ProjectConfig) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".pkgkraft.yaml"))
	require.NoError(t, err)
	var cfg domain.ProjectConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	return string(data), cfg
}

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)

	raw, cfg := readConfig(t, dir)
	assert.Equal(t, 80.0, cfg.MinScore)
	assert.Empty(t, cfg.Skip)
	assert.Contains(t, raw, "#   - package_has_author")
}

func TestInitCmd_WithSkip(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--min", "60", "--skip", "package_has_author,package_has_repo")
	require.NoError(t, err)

	_, cfg := readConfig(t, dir)
	assert.Equal(t, 60.0, cfg.MinScore)
	assert.Equal(t, []string{"package_has_author", "package_has_repo"}, cfg.Skip)
}

func TestInitCmd_RejectsUnknownRule(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--skip", "package_has_readme")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, ".pkgkraft.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pkgkraft.yaml"), []byte("min_score: 1\n"), 0644))

	_, err := run(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "init", dir, "--force")
	require.NoError(t, err)
	_, cfg := readConfig(t, dir)
	assert.Equal(t, 80.0, cfg.MinScore)
}
