package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 150*time.Millisecond, cfg.EvalWindow())
}

func TestLoadParsesAndRepairs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "full file",
			yaml: "data_dir: /tmp/leaf\npages_per_minute: 1.5\neval_window_ms: 200\n",
			want: Config{DataDir: "/tmp/leaf", PagesPerMinute: 1.5, EvalWindowMS: 200},
		},
		{
			name: "negative rate repaired",
			yaml: "pages_per_minute: -2\n",
			want: Config{PagesPerMinute: 0, EvalWindowMS: 150},
		},
		{
			name: "zero window falls back",
			yaml: "eval_window_ms: 0\n",
			want: Config{EvalWindowMS: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{nope: ["), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
