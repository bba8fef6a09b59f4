package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "local", cfg.Auth.Provider)
	assert.Equal(t, 20, cfg.Feed.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce())
	assert.Equal(t, time.UTC, cfg.Analytics.Location())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9000
auth:
  provider: supabase
  admin_emails:
    - ops@kajoogram.app
analytics:
  timezone: Asia/Kolkata
feed:
  shelf_every: 4
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("KAJOO_SERVER_PORT", "9100")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "supabase", cfg.Auth.Provider)
	assert.Equal(t, []string{"ops@kajoogram.app"}, cfg.Auth.AdminEmails)
	assert.Equal(t, 4, cfg.Feed.ShelfEvery)
	assert.Equal(t, 20, cfg.Feed.ShelfSize)
	assert.Equal(t, "Asia/Kolkata", cfg.Analytics.Location().String())
}

func TestDurationsFallBack(t *testing.T) {
	assert.Equal(t, 10*time.Second, AuthConfig{}.RequestTimeout())
	assert.Equal(t, 72*time.Hour, AuthConfig{}.TokenTTL())
	assert.Equal(t, 15*time.Second, LLMConfig{}.Timeout())
	assert.Equal(t, time.UTC, AnalyticsConfig{Timezone: "Mars/Olympus"}.Location())
}
