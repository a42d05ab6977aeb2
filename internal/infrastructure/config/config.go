package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
)

type Config struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	ServerAddress   string        `envconfig:"SERVER_ADDRESS" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"careerpilot.db"`
	LogFile         string        `envconfig:"LOG_FILE"`

	Analysis  AnalysisConfig
	Session   SessionConfig
	Readiness ReadinessConfig
	Limiter   RateLimiterConfig
}

// AnalysisConfig selects and configures the response analyzer.
type AnalysisConfig struct {
	Analyzer string        `envconfig:"ANALYZER" default:"llm"` // "llm" or "heuristic"
	LLMURL   string        `envconfig:"LLM_URL" default:"http://localhost:1234"`
	LLMModel string        `envconfig:"LLM_MODEL" default:"qwen3-8b"`
	APIKey   string        `envconfig:"LLM_API_KEY"`
	Timeout  time.Duration `envconfig:"ANALYSIS_TIMEOUT" default:"30s"`
}

type SessionConfig struct {
	Length int `envconfig:"SESSION_LENGTH" default:"6"`
}

// ReadinessConfig holds the minimum overall score for each readiness level.
type ReadinessConfig struct {
	WellPrepared int `envconfig:"READINESS_WELL_PREPARED" default:"85"`
	Ready        int `envconfig:"READINESS_READY" default:"70"`
	Developing   int `envconfig:"READINESS_DEVELOPING" default:"50"`
}

type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	switch c.Analysis.Analyzer {
	case "llm":
		if c.Analysis.LLMURL == "" || c.Analysis.LLMModel == "" {
			return fmt.Errorf("LLM_URL and LLM_MODEL are required when ANALYZER=llm")
		}
	case "heuristic":
	default:
		return fmt.Errorf("invalid ANALYZER: %q (must be llm or heuristic)", c.Analysis.Analyzer)
	}
	if c.Analysis.Timeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must be positive")
	}
	if c.Session.Length < 1 {
		return fmt.Errorf("SESSION_LENGTH must be at least 1")
	}
	if err := c.ReadinessPolicy().Validate(); err != nil {
		return err
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// ReadinessPolicy converts the configured thresholds to the domain policy.
func (c *Config) ReadinessPolicy() practicesession.ReadinessPolicy {
	return practicesession.ReadinessPolicy{
		WellPrepared: c.Readiness.WellPrepared,
		Ready:        c.Readiness.Ready,
		Developing:   c.Readiness.Developing,
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Addr=%s, DB=%s, Analyzer=%s, Model=%s, AnalysisTimeout=%s, "+
		"SessionLength=%d, Readiness=%d/%d/%d, Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t}",
		c.Env, c.ServerAddress, c.DatabasePath, c.Analysis.Analyzer, c.Analysis.LLMModel, c.Analysis.Timeout,
		c.Session.Length, c.Readiness.WellPrepared, c.Readiness.Ready, c.Readiness.Developing,
		c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled)
}
