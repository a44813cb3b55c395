package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"outlay/internal/config"
)

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           "8081",
		SQLiteDBPath:   filepath.Join(t.TempDir(), "outlay.db"),
		DataBackend:    "memory",
		StatsCacheSize: 10,
		StatsCacheTTL:  time.Minute,
	}
}

func TestCreateMemoryBackend(t *testing.T) {
	cfg := baseConfig(t)
	kv, err := NewFactory(nil).Create(cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer kv.Close()

	if err := kv.Put(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("put through created backend: %v", err)
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	cfg := baseConfig(t)
	cfg.DataBackend = "sqlite"
	kv, err := NewFactory(nil).Create(cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer kv.Close()

	if err := kv.Put(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("put through created backend: %v", err)
	}
	v, err := kv.Get(context.Background(), "k")
	if err != nil || string(v) != "v" {
		t.Fatalf("get through created backend: %q, %v", v, err)
	}
}

func TestCreateInvalidBackend(t *testing.T) {
	cfg := baseConfig(t)
	cfg.DataBackend = "sheets"
	if _, err := NewFactory(nil).Create(cfg); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, tc := range []struct {
		t  Type
		ok bool
	}{
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("redis"), false},
		{Type(""), false},
	} {
		if got := tc.t.IsValid(); got != tc.ok {
			t.Fatalf("%q IsValid=%v, expected %v", tc.t, got, tc.ok)
		}
	}
}
