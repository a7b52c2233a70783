package llm

import (
	"os"
	"strconv"
)

// Task identifies the kind of completion being requested.
type Task string

const (
	TaskSuggest    Task = "suggest"
	TaskHotelNames Task = "hotel_names"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the AI subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[Task]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. AI enrichment
// is disabled until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Model:      "gpt-4o-mini",
		TimeoutMs:  20000,
		MaxRetries: 1,
		Tasks: map[Task]TaskConfig{
			TaskSuggest:    {Temperature: 0.4, MaxTokens: 1500, TimeoutMs: 25000},
			TaskHotelNames: {Temperature: 0.2, MaxTokens: 256, TimeoutMs: 8000},
		},
	}
}

// LoadConfig reads AI configuration from environment variables, falling
// back to defaults for anything unset. Setting OPENAI_API_KEY enables
// enrichment; TRIPPREP_AI_ENABLED=false forces it off regardless.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("TRIPPREP_AI_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TRIPPREP_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TRIPPREP_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TRIPPREP_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRIPPREP_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskSuggest, "TRIPPREP_AI_SUGGEST_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskHotelNames, "TRIPPREP_AI_HOTEL_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task, preferring
// the task-specific value over the global one.
func (c Config) TaskTimeout(task Task) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task Task, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
