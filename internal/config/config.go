/*
Package config resolves process configuration once at startup. The result is
a plain value that main injects into the gateway, the store and the server;
nothing below this package reads the environment.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultBaseURL  = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	defaultModel    = "qwen-max"
	defaultTimeout  = 60 * time.Second
	defaultPort     = 8000
	defaultDataFile = "user_body_data.json"
	defaultIndex    = "health-cube.html"
)

// ConfigError reports a missing or unusable setting. It is fatal at startup.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

// LLM holds everything the gateway needs to reach the chat-completion endpoint.
type LLM struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type Config struct {
	Port         int
	BodyDataFile string
	IndexFile    string
	LogLevel     zerolog.Level
	LogFormat    string // json or console
	LLM          LLM
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, &ConfigError{Key: ".env", Reason: err.Error()}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function so tests can
// avoid touching the process environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		BodyDataFile: get("BODY_DATA_FILE", defaultDataFile),
		IndexFile:    get("INDEX_FILE", defaultIndex),
		LogFormat:    strings.ToLower(get("LOG_FORMAT", "json")),
		LLM: LLM{
			Provider: strings.ToLower(get("LLM_PROVIDER", ProviderOpenAI)),
			APIKey:   get("LLM_API_KEY", ""),
			BaseURL:  strings.TrimRight(get("LLM_BASE_URL", defaultBaseURL), "/"),
			Model:    get("LLM_MODEL_NAME", defaultModel),
			Timeout:  defaultTimeout,
		},
	}

	if cfg.LLM.APIKey == "" {
		return Config{}, &ConfigError{Key: "LLM_API_KEY", Reason: "must be set"}
	}
	if cfg.LLM.Provider != ProviderOpenAI && cfg.LLM.Provider != ProviderGemini {
		return Config{}, &ConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", cfg.LLM.Provider)}
	}
	if cfg.LLM.Provider == ProviderGemini && get("LLM_BASE_URL", "") == "" {
		cfg.LLM.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.LLM.Provider == ProviderGemini && get("LLM_MODEL_NAME", "") == "" {
		cfg.LLM.Model = "gemini-2.5-flash"
	}

	port, err := strconv.Atoi(get("PORT", strconv.Itoa(defaultPort)))
	if err != nil || port <= 0 {
		return Config{}, &ConfigError{Key: "PORT", Reason: "must be a positive integer"}
	}
	cfg.Port = port

	if raw := get("LLM_TIMEOUT_SECONDS", ""); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, &ConfigError{Key: "LLM_TIMEOUT_SECONDS", Reason: "must be a positive integer"}
		}
		cfg.LLM.Timeout = time.Duration(secs) * time.Second
	}

	level, err := zerolog.ParseLevel(strings.ToLower(get("LOG_LEVEL", "info")))
	if err != nil {
		return Config{}, &ConfigError{Key: "LOG_LEVEL", Reason: err.Error()}
	}
	cfg.LogLevel = level

	return cfg, nil
}
