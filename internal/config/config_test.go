package config

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"LLM_API_KEY": "sk-test"}))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "user_body_data.json", cfg.BodyDataFile)
	assert.Equal(t, "health-cube.html", cfg.IndexFile)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "https://dashscope.aliyuncs.com/compatible-mode/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "qwen-max", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestFromLookup_MissingAPIKeyIsConfigError(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"LLM_API_KEY": "   "}))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "LLM_API_KEY", cfgErr.Key)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"LLM_API_KEY":         "k",
		"LLM_BASE_URL":        "http://localhost:9999/v1/",
		"LLM_MODEL_NAME":      "gpt-4o-mini",
		"LLM_TIMEOUT_SECONDS": "5",
		"PORT":                "9090",
		"BODY_DATA_FILE":      "/tmp/body.json",
		"LOG_LEVEL":           "DEBUG",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/body.json", cfg.BodyDataFile)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestFromLookup_GeminiDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"LLM_API_KEY": "k", "LLM_PROVIDER": "Gemini"}))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.LLM.BaseURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
}

func TestFromLookup_RejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"PORT":                {"LLM_API_KEY": "k", "PORT": "abc"},
		"LLM_TIMEOUT_SECONDS": {"LLM_API_KEY": "k", "LLM_TIMEOUT_SECONDS": "-1"},
		"LLM_PROVIDER":        {"LLM_API_KEY": "k", "LLM_PROVIDER": "anthropic"},
		"LOG_LEVEL":           {"LLM_API_KEY": "k", "LOG_LEVEL": "loud"},
	}
	for key, env := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, key, cfgErr.Key)
		})
	}
}
