package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "MEDIA_DIR", "TEMPLATES_DIR", "SEED_DEMO", "RATE_LIMIT"} {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_FILE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBDSN != "droneshop.db" {
		t.Errorf("DBDSN = %q", cfg.DBDSN)
	}
	if cfg.TemplatesDir != "" {
		t.Errorf("TemplatesDir = %q, want embedded", cfg.TemplatesDir)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want disabled", cfg.LogFile)
	}
	if !cfg.SeedDemo {
		t.Error("SeedDemo should default to true")
	}
	if cfg.RateLimit != 60 || cfg.LoginRateLimit != 5 {
		t.Errorf("limits = %d/%d", cfg.RateLimit, cfg.LoginRateLimit)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("COOKIE_SECURE", "1")
	t.Setenv("LOG_FILE", "")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DBDSN != ":memory:" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
	if cfg.SeedDemo {
		t.Error("SeedDemo should be false")
	}
	if cfg.RateLimit != 60 {
		t.Errorf("bad int should fall back to default, got %d", cfg.RateLimit)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true")
	}
}
