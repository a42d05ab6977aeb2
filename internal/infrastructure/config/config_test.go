package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/careerpilot/backend/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" || cfg.ServerAddress != ":8080" {
		t.Errorf("unexpected server defaults: %s %s", cfg.Env, cfg.ServerAddress)
	}
	if cfg.Analysis.Analyzer != "llm" || cfg.Analysis.Timeout != 30*time.Second {
		t.Errorf("unexpected analysis defaults: %+v", cfg.Analysis)
	}
	if cfg.Session.Length != 6 {
		t.Errorf("expected session length 6, got %d", cfg.Session.Length)
	}
	p := cfg.ReadinessPolicy()
	if p.WellPrepared != 85 || p.Ready != 70 || p.Developing != 50 {
		t.Errorf("unexpected readiness defaults: %+v", p)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ANALYZER", "heuristic")
	t.Setenv("ANALYSIS_TIMEOUT", "5s")
	t.Setenv("SESSION_LENGTH", "3")
	t.Setenv("READINESS_READY", "75")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.Analyzer != "heuristic" || cfg.Analysis.Timeout != 5*time.Second {
		t.Errorf("unexpected analysis config: %+v", cfg.Analysis)
	}
	if cfg.Session.Length != 3 || cfg.Readiness.Ready != 75 || cfg.Limiter.Enabled {
		t.Errorf("unexpected config: %s", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad env", "APP_ENV", "prod", "invalid environment"},
		{"bad analyzer", "ANALYZER", "magic", "invalid ANALYZER"},
		{"zero length", "SESSION_LENGTH", "0", "SESSION_LENGTH"},
		{"thresholds out of order", "READINESS_READY", "90", "strictly descending"},
		{"zero burst", "RATE_LIMIT_BURST", "0", "RATE_LIMIT_BURST"},
		{"not a duration", "ANALYSIS_TIMEOUT", "soon", "ANALYSIS_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
