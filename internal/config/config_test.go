package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Store.Driver != defaultStoreDriver {
		t.Fatalf("expected default store driver %s, got %s", defaultStoreDriver, cfg.Store.Driver)
	}
	if cfg.Auth.ExpiresDays != defaultJWTDays {
		t.Fatalf("expected %d token days, got %d", defaultJWTDays, cfg.Auth.ExpiresDays)
	}
	if cfg.Auth.Required {
		t.Fatalf("expected auth optional by default")
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envAppEnv, "development")
	t.Setenv(envStoreDriver, "sqlite3")
	t.Setenv(envDataCompress, "yes")
	t.Setenv(envRedisAddr, "localhost:6379")
	t.Setenv(envRedisDB, "2")
	t.Setenv(envAuthRequired, "1")
	t.Setenv(envJWTDays, "3")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development mode")
	}
	if cfg.Store.Driver != "sqlite3" || !cfg.Store.Compress {
		t.Fatalf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if !cfg.Auth.Required || cfg.Auth.ExpiresDays != 3 {
		t.Fatalf("unexpected auth config %+v", cfg.Auth)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv(envRedisDB, "nope")
	t.Setenv(envJWTDays, "-4")
	t.Setenv(envAuthRequired, "maybe")

	cfg := Load()

	if cfg.Redis.DB != 0 || cfg.Auth.ExpiresDays != defaultJWTDays || cfg.Auth.Required {
		t.Fatalf("expected defaults on invalid values, got %+v %+v", cfg.Redis, cfg.Auth)
	}
}
