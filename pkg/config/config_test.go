package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/talentmatch/pkg/scoring"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "AUTO_MIGRATE", "EMBEDDING_PROVIDER", "PIPELINE_WORKERS",
		"MATCH_WEIGHT_SEMANTIC", "MATCH_WEIGHT_SKILL", "MATCH_WEIGHT_EXPERIENCE", "EMBEDDING_CACHE_TTL"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "hashing", cfg.EmbeddingProvider)
	assert.Equal(t, 4, cfg.PipelineWorkers)
	assert.Equal(t, 24*time.Hour, cfg.EmbeddingCacheTTL)
	assert.Equal(t, scoring.DefaultWeights(), cfg.Weights())
	assert.Equal(t, time.Hour, cfg.JWTTTL())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("EMBEDDING_PROVIDER", "OpenAI")
	t.Setenv("EMBEDDING_RPS", "2.5")
	t.Setenv("EMBEDDING_CACHE_TTL", "90m")
	t.Setenv("MATCH_WEIGHT_SEMANTIC", "0.5")
	t.Setenv("MATCH_WEIGHT_SKILL", "0.4")
	t.Setenv("PIPELINE_WORKERS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "openai", cfg.EmbeddingProvider)
	assert.InDelta(t, 2.5, cfg.EmbeddingRPS, 1e-9)
	assert.Equal(t, 90*time.Minute, cfg.EmbeddingCacheTTL)
	assert.Equal(t, 4, cfg.PipelineWorkers)

	w := cfg.Weights()
	assert.InDelta(t, 0.5, w.Semantic, 1e-9)
	assert.InDelta(t, 0.4, w.Skill, 1e-9)
	assert.InDelta(t, scoring.DefaultExperienceWeight, w.Experience, 1e-9)
}
