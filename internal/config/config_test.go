package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("expected default backend sqlite, got %s", cfg.DataBackend)
	}
	if cfg.StatsCacheSize != 100 {
		t.Fatalf("expected default cache size 100, got %d", cfg.StatsCacheSize)
	}
	if cfg.StatsCacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache TTL 5m, got %v", cfg.StatsCacheTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("STATS_CACHE_SIZE", "7")
	t.Setenv("STATS_CACHE_TTL", "90s")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "memory" ||
		cfg.StatsCacheSize != 7 || cfg.StatsCacheTTL != 90*time.Second {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults ok", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "nope" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "sheets" }, "invalid data backend"},
		{"empty db path", func(c *Config) { c.SQLiteDBPath = "" }, "SQLite database path"},
		{"zero cache size", func(c *Config) { c.StatsCacheSize = 0 }, "stats cache size"},
		{"tiny cache ttl", func(c *Config) { c.StatsCacheTTL = time.Millisecond }, "stats cache TTL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Port:           "8081",
				SQLiteDBPath:   t.TempDir() + "/outlay.db",
				DataBackend:    "sqlite",
				StatsCacheSize: 100,
				StatsCacheTTL:  5 * time.Minute,
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Port:           "bad",
		SQLiteDBPath:   "x.db",
		DataBackend:    "bogus",
		StatsCacheSize: 0,
		StatsCacheTTL:  time.Minute,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "stats cache size"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected combined error to contain %q, got %v", want, err)
		}
	}
}
