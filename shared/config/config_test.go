package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfig(t,
		"api_base_url: http://api:8080\ngames: [Chess, Go]\nfeedback_reset_delay: 3s\nredis:\n  addr: redis:6379\n",
		"redis_password: secret\n",
	)

	cfg := MustLoad(dir)

	assert.Equal(t, "http://api:8080", cfg.Public.APIBaseURL)
	assert.Equal(t, []string{"Chess", "Go"}, cfg.Public.Games)
	assert.Equal(t, 3*time.Second, cfg.Public.FeedbackResetDelay)
	assert.Equal(t, "redis:6379", cfg.Public.Redis.Addr)
	assert.Equal(t, "secret", cfg.Private.RedisPassword)
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, "api_base_url: http://api:8080\ngames: [Chess]\n", "")

	cfg := MustLoad(dir)

	assert.Equal(t, 5*time.Second, cfg.Public.FeedbackResetDelay)
	assert.Equal(t, int64(5<<20), cfg.Public.MaxPhotoSize)
	assert.Equal(t, []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}, cfg.Public.AllowedPhotoMimeTypes)
	assert.Equal(t, 24*time.Hour, cfg.Public.SessionTTL)
	assert.Equal(t, "info", cfg.Public.LogLevel)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		public string
	}{
		{name: "missing games", public: "api_base_url: http://api:8080\n"},
		{name: "empty game name", public: "api_base_url: http://api:8080\ngames: ['']\n"},
		{name: "missing api url", public: "games: [Chess]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.public, "")
			assert.Panics(t, func() { MustLoad(dir) })
		})
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
