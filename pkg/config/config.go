package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/artem13815/talentmatch/pkg/scoring"
)

type Config struct {
	Port          string
	DatabaseURL   string
	AutoMigrate   bool
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	CORSOrigin    string

	EmbeddingProvider   string
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	EmbeddingModel      string
	EmbeddingDimensions int
	EmbeddingRPS        float64
	RedisURL            string
	EmbeddingCacheTTL   time.Duration

	UploadDir           string
	MaxUploadBytes      int64
	PipelineWorkers     int
	SweepSchedule       string
	SkillDictionaryPath string

	WeightSemantic   float64
	WeightSkill      float64
	WeightExperience float64

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// .env не обязателен
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment without touching .env.
func FromEnv() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AutoMigrate:   getEnvBool("AUTO_MIGRATE", true),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "talentmatch"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"),

		EmbeddingProvider:   strings.ToLower(getEnv("EMBEDDING_PROVIDER", "hashing")),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 0),
		EmbeddingRPS:        getEnvFloat("EMBEDDING_RPS", 0),
		RedisURL:            os.Getenv("REDIS_URL"),
		EmbeddingCacheTTL:   getEnvDuration("EMBEDDING_CACHE_TTL", 24*time.Hour),

		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		PipelineWorkers:     getEnvInt("PIPELINE_WORKERS", 4),
		SweepSchedule:       os.Getenv("PIPELINE_SWEEP_SCHEDULE"),
		SkillDictionaryPath: os.Getenv("SKILL_DICTIONARY_PATH"),

		WeightSemantic:   getEnvFloat("MATCH_WEIGHT_SEMANTIC", scoring.DefaultSemanticWeight),
		WeightSkill:      getEnvFloat("MATCH_WEIGHT_SKILL", scoring.DefaultSkillWeight),
		WeightExperience: getEnvFloat("MATCH_WEIGHT_EXPERIENCE", scoring.DefaultExperienceWeight),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
}

// Weights returns the configured scoring policy.
func (c Config) Weights() scoring.Weights {
	return scoring.Weights{
		Semantic:   c.WeightSemantic,
		Skill:      c.WeightSkill,
		Experience: c.WeightExperience,
	}
}

// JWTTTL is the lifetime of minted tokens.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
