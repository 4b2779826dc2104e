package resource

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("TEST_FEED_BASE_URL", "https://override.example.net")
	Init("testdata/application.yml")
	os.Exit(m.Run())
}

func TestGetString_ResolvesEnvPlaceholder(t *testing.T) {
	assert.Equal(t, "https://override.example.net", GetString("app.datafeed.base-url"))
}

func TestTypedGetters(t *testing.T) {
	assert.False(t, GetBool("app.datafeed.local-mode"))
	assert.Equal(t, 30*time.Second, GetDuration("app.datafeed.update-delay"))
	assert.Equal(t, 2, GetInt("app.client.max-retries"))
}

func TestGetString_UnknownKeyIsEmpty(t *testing.T) {
	assert.Empty(t, GetString("app.unknown.key"))
}

func TestResolveEnvVariable(t *testing.T) {
	assert.Equal(t, "plain value", resolveEnvVariable("plain value"))
	assert.Equal(t, "fallback", resolveEnvVariable("${RESOURCE_TEST_UNSET:fallback}"))
	assert.Equal(t, "", resolveEnvVariable("${RESOURCE_TEST_UNSET}"))
}

func TestResolveEnvVariable_EmptyDefault(t *testing.T) {
	// An empty default, the shape optional secrets use, resolves to the
	// empty string rather than leaking the placeholder itself.
	assert.Equal(t, "", resolveEnvVariable("${RESOURCE_TEST_UNSET:}"))
}

func TestGetString_EmptyDefaultPlaceholder(t *testing.T) {
	assert.Equal(t, "", GetString("app.cache.redis-password"))
}
