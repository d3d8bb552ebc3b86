package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, 1, conf.WindowScale)
	require.Equal(t, int64(0), conf.Seed)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "log-level: debug\nwindow-scale: 2\nseed: 1234\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, 2, conf.WindowScale)
	require.Equal(t, int64(1234), conf.Seed)
}
