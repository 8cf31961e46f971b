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
	assert.Equal(t, "native", cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Error(t, cfg.Validate(), "data dir is required")

	cfg.DataDir = "/srv/data"
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name:    "yaml with relative dir",
			file:    "sampledata.yaml",
			content: "data_dir: assets\nbackend: imaging\n",
			expected: Config{
				DataDir:  filepath.Join(dir, "assets"),
				Backend:  "imaging",
				LogLevel: "info",
			},
		},
		{
			name:    "json with absolute dir",
			file:    "sampledata.json",
			content: `{"data_dir": "/opt/skdata", "log_level": "debug"}`,
			expected: Config{
				DataDir:  "/opt/skdata",
				Backend:  "native",
				LogLevel: "debug",
			},
		},
		{
			name:    "malformed",
			file:    "broken.yml",
			content: "data_dir: [unterminated",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{DataDir: "/data", LogLevel: "info"}
	assert.Error(t, cfg.Validate())

	// Any name passes; codec.Open decides whether it is registered.
	cfg.Backend = "pillow"
	assert.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "trace"
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")
	t.Setenv(EnvBackend, "vips")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, Config{DataDir: "/env/data", Backend: "vips", LogLevel: "debug"}, cfg)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{DataDir: "/abs/data", Backend: "libjpeg", LogLevel: "warn"}

	for _, name := range []string{"out.yaml", "out.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	}
}
