package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskBriefing  TaskType = "briefing"
	TaskFollowUp  TaskType = "follow_up"
	TaskProposal  TaskType = "proposal"
	TaskNorms     TaskType = "norms"
	TaskMoodboard TaskType = "moodboard"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	ImageModel string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// Enabled reports whether an API key is present. Without one every call
// fails fast with ErrDisabled.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// DefaultConfig returns a Config with sensible defaults. AI features stay
// disabled until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		APIKey:     "",
		LogCalls:   false,
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		ImageModel: "gemini-2.5-flash-image",
		TimeoutMs:  20000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskBriefing:  {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 20000},
			TaskFollowUp:  {Temperature: 0.7, MaxTokens: 512, TimeoutMs: 10000},
			TaskProposal:  {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 30000},
			TaskNorms:     {Temperature: 0.1, MaxTokens: 2048, TimeoutMs: 30000},
			TaskMoodboard: {Temperature: 0.8, MaxTokens: 0, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SPAZIO_AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SPAZIO_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SPAZIO_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SPAZIO_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SPAZIO_AI_IMAGE_MODEL"); v != "" {
		cfg.ImageModel = v
	}
	if v := os.Getenv("SPAZIO_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SPAZIO_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskBriefing, "SPAZIO_AI_BRIEFING_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskFollowUp, "SPAZIO_AI_FOLLOW_UP_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskProposal, "SPAZIO_AI_PROPOSAL_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskNorms, "SPAZIO_AI_NORMS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMoodboard, "SPAZIO_AI_MOODBOARD_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
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
