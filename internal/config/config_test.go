package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		wantErrorContains []string
		check             func(t *testing.T, cfg *Config)
	}{
		{
			name:          "defaults when config file is empty",
			configContent: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, "wordlab.db", cfg.Database.Path)
				assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
				assert.Equal(t, uint(3), cfg.OpenAI.RetryAttempts)
				assert.Equal(t, []string{"Chinese", "Japanese"}, cfg.Languages)
				assert.Equal(t, "audio", cfg.Audio.CacheDirectory)
				assert.Equal(t, 100, cfg.Audio.MaxCacheSizeMB)
				// Zero scheduler params are usable as-is
				assert.Equal(t, scheduler.Params{}, cfg.Scheduler)
				assert.Equal(t, review.SelectorParams{}, cfg.Session)
			},
		},
		{
			name: "custom values override defaults",
			configContent: `database:
  driver: mysql
  host: db.local
  port: 3307
  database: vocab
  username: learner
scheduler:
  graduation_streak: 3
  max_interval_days: 180
session:
  queue_size: 30
  daily_new_limit: 5
  new_word_max_rank: 5000
languages:
  - Japanese
audio:
  cache_directory: /tmp/audio
  max_cache_size_mb: 50
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.Database.Driver)
				assert.Equal(t, "db.local", cfg.Database.Host)
				assert.Equal(t, 3307, cfg.Database.Port)
				assert.Equal(t, "vocab", cfg.Database.Database)
				assert.Equal(t, "learner", cfg.Database.Username)
				assert.Equal(t, 3, cfg.Scheduler.GraduationStreak)
				assert.Equal(t, 180, cfg.Scheduler.MaxIntervalDays)
				assert.Equal(t, 30, cfg.Session.QueueSize)
				assert.Equal(t, 5, cfg.Session.DailyNewLimit)
				assert.Equal(t, 5000, cfg.Session.NewWordMaxRank)
				assert.Equal(t, []string{"Japanese"}, cfg.Languages)
				assert.Equal(t, "/tmp/audio", cfg.Audio.CacheDirectory)
				assert.Equal(t, 50, cfg.Audio.MaxCacheSizeMB)
			},
		},
		{
			name: "api key comes from the environment only",
			configContent: `openai:
  api_key: from-file
`,
			env: map[string]string{"OPENAI_API_KEY": "from-env"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from-env", cfg.OpenAI.APIKey)
			},
		},
		{
			name: "database password from environment",
			env:  map[string]string{"DB_PASSWORD": "secret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "secret", cfg.Database.Password)
			},
		},
		{
			name: "unknown database driver is rejected",
			configContent: `database:
  driver: postgres
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "driver"},
		},
		{
			name:              "empty languages list is rejected",
			configContent:     "languages: []\n",
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "languages"},
		},
		{
			name: "missing dataset file is rejected",
			configContent: `dataset:
  path: /nonexistent/unigram_freq.csv
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "readable file"},
		},
		{
			name:              "invalid YAML format",
			configContent:     "database: [unclosed\n  driver: sqlite",
			wantErr:           true,
			wantErrorContains: []string{"could not be read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))

			cfg, err := Load(configPath)
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DatasetFileExists(t *testing.T) {
	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "unigram_freq.csv")
	require.NoError(t, os.WriteFile(datasetPath, []byte("word,count\n"), 0644))

	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("dataset:\n  path: "+datasetPath+"\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, datasetPath, cfg.Dataset.Path)
}
