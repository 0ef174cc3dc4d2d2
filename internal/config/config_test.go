package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_QUEUE_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBMaxOpenConns != 10 {
		t.Fatalf("expected DBMaxOpenConns=10, got %d", cfg.DBMaxOpenConns)
	}
	if cfg.DBQueueLimit != 0 {
		t.Fatalf("expected unbounded queue by default, got %d", cfg.DBQueueLimit)
	}
	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.StadiumCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected StadiumCacheTTL: %s", cfg.StadiumCacheTTL)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected pyroscope app name to default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PoolSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MAX_IDLE_CONNS", "8")
	t.Setenv("DB_QUEUE_LIMIT", "32")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBMaxOpenConns != 4 {
		t.Fatalf("unexpected DBMaxOpenConns: %d", cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns != 4 {
		t.Fatalf("expected idle conns capped at open conns, got %d", cfg.DBMaxIdleConns)
	}
	if cfg.DBQueueLimit != 32 {
		t.Fatalf("unexpected DBQueueLimit: %d", cfg.DBQueueLimit)
	}
	if cfg.DBConnMaxLifetime != 5*time.Minute {
		t.Fatalf("unexpected DBConnMaxLifetime: %s", cfg.DBConnMaxLifetime)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidPoolSettings(t *testing.T) {
	cases := map[string]string{
		"DB_MAX_OPEN_CONNS": "0",
		"DB_QUEUE_LIMIT":    "-1",
		"LOGIN_RATE_BURST":  "abc",
		"PPROF_ENABLED":     "maybe",
		"STADIUM_CACHE_TTL": "-1s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.TrustedProxies) != 0 {
		t.Fatalf("expected no trusted proxies by default, got %v", cfg.TrustedProxies)
	}

	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,172.16.0.1 ")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" || cfg.TrustedProxies[1] != "172.16.0.1" {
		t.Fatalf("unexpected trusted proxies: %v", cfg.TrustedProxies)
	}
}
