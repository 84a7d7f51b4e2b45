package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TASKFLOW_BACKEND", "TASKFLOW_DATA", "TASKFLOW_LOG_LEVEL", "TASKFLOW_LOG_FORMAT", "TASKFLOW_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TASKFLOW_DATA", dir)

	cfg, err := Load("", "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, dir, cfg.Store.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.Equal(t, filepath.Join(dir, "taskflow.log"), cfg.LogFile())
}

func TestLoadFileInDataDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TASKFLOW_DATA", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`
[store]
backend = "NutsDB"

[log]
level = "debug"
format = "json"
file = "/tmp/tf.log"

[ui]
color = "never"
group = true
`), 0o644))

	cfg, err := Load("", "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendNutsDB, cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/tf.log", cfg.LogFile())
	assert.Equal(t, "never", cfg.UI.Color)
	assert.True(t, cfg.UI.Group)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[store]
backend = "nutsdb"
dir = "/from/file"
[log]
level = "debug"
`), 0o644))
	t.Setenv("TASKFLOW_BACKEND", "memory")
	t.Setenv("TASKFLOW_LOG_LEVEL", "error")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "/from/file", cfg.Store.Dir)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadDataDirOverride(t *testing.T) {
	clearEnv(t)
	envDir, flagDir := t.TempDir(), t.TempDir()
	t.Setenv("TASKFLOW_DATA", envDir)
	require.NoError(t, os.WriteFile(filepath.Join(envDir, FileName), []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(flagDir, FileName), []byte(`
[store]
backend = "memory"
dir = "/ignored"
[log]
level = "debug"
`), 0o644))

	cfg, err := Load("", flagDir)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, flagDir, cfg.Store.Dir)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[store]\nbackend = \"redis\"\n"), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Store.Backend = BackendFile
	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TASKFLOW_DATA", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[store\n"), 0o644))

	_, err := Load("", "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Store.Backend = "redis" }, wantErr: true},
		{name: "empty dir", mutate: func(c *Config) { c.Store.Dir = "" }, wantErr: true},
		{name: "memory needs no dir", mutate: func(c *Config) { c.Store.Backend = "memory"; c.Store.Dir = "" }},
		{name: "bad color", mutate: func(c *Config) { c.UI.Color = "sometimes" }, wantErr: true},
		{name: "empty color", mutate: func(c *Config) { c.UI.Color = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Store.Dir = "/data"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
