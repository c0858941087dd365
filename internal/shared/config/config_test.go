package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "EXPORT_STORE", "GENERATOR_SEED", "CORS_ALLOW_ORIGINS", "STATIC_DIR"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.ExportStoreType != "" {
		t.Fatalf("expected no export store, got %q", cfg.ExportStoreType)
	}
	if cfg.GeneratorSeed != 0 {
		t.Fatalf("expected zero seed, got %d", cfg.GeneratorSeed)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("EXPORT_STORE", "S3")
	t.Setenv("GENERATOR_SEED", "42")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("PDF_FONT_PATH", "/fonts/Amiri.ttf")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.ExportStoreType != "s3" {
		t.Fatalf("expected s3, got %q", cfg.ExportStoreType)
	}
	if cfg.GeneratorSeed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.GeneratorSeed)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.PDFFontPath != "/fonts/Amiri.ttf" {
		t.Fatalf("unexpected font path %q", cfg.PDFFontPath)
	}
}

func TestInvalidSeedFallsBack(t *testing.T) {
	t.Setenv("GENERATOR_SEED", "abc")
	if got := getEnvInt64("GENERATOR_SEED", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}
