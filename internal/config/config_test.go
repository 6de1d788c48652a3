package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirectoryDefaults(t *testing.T) {
	cfg, err := LoadDirectory("")
	require.NoError(t, err)
	assert.Equal(t, ":8310", cfg.Listen)
	assert.Equal(t, "certs", cfg.CertsDir)
}

func TestLoadDirectoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directoryd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\ncerts_dir: /etc/courier/certs\n"), 0o600))

	cfg, err := LoadDirectory(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "/etc/courier/certs", cfg.CertsDir)
}

func TestLoadDirectoryMissingFile(t *testing.T) {
	_, err := LoadDirectory(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDirectoryBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directoryd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [\n"), 0o600))
	_, err := LoadDirectory(path)
	require.Error(t, err)
}
