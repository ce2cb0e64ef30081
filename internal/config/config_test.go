package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "ANALYTICS_URL", "ANALYTICS_DEBOUNCE", "REDIS_ADDR", "REDIS_DB", "EXPORT_DIR"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "3000", c.Server.Port)
	assert.Equal(t, "development", c.Server.Env)
	assert.Equal(t, 5*time.Second, c.Analytics.Debounce)
	assert.Empty(t, c.Analytics.URL)
	assert.Empty(t, c.Redis.Addr)
	assert.Equal(t, 0, c.Redis.DB)
	assert.Equal(t, "./exports", c.Export.Dir)
	assert.False(t, c.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("ANALYTICS_DEBOUNCE", "250ms")
	t.Setenv("ANALYTICS_URL", "http://collector/api/analytics/save")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	c := FromEnv()
	assert.Equal(t, "8080", c.Server.Port)
	assert.True(t, c.IsProduction())
	assert.Equal(t, 250*time.Millisecond, c.Analytics.Debounce)
	assert.Equal(t, "http://collector/api/analytics/save", c.Analytics.URL)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 2, c.Redis.DB)
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("ANALYTICS_DEBOUNCE", "soon")
	t.Setenv("REDIS_DB", "two")
	c := FromEnv()
	assert.Equal(t, 5*time.Second, c.Analytics.Debounce)
	assert.Equal(t, 0, c.Redis.DB)
}
