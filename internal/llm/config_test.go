package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SPAZIO_AI_API_KEY", "k-123")
	t.Setenv("SPAZIO_AI_MODEL", "gemini-test")
	t.Setenv("SPAZIO_AI_TIMEOUT_MS", "5000")
	t.Setenv("SPAZIO_AI_NORMS_TIMEOUT_MS", "45000")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "gemini-test", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskNorms))
}

func TestConfig_TaskTimeoutFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	cfg.Tasks[TaskFollowUp] = TaskConfig{Temperature: 0.5}

	assert.Equal(t, 1234, cfg.TaskTimeout(TaskFollowUp))
	assert.Equal(t, 1234, cfg.TaskTimeout("unknown"))
}

func TestDefaultConfig_Disabled(t *testing.T) {
	assert.False(t, DefaultConfig().Enabled())
}
