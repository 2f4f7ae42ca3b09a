package oracle

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("PAWNFORGE_ENGINE", "")
	t.Setenv("PAWNFORGE_ENGINE_DEPTH", "")
	t.Setenv("PAWNFORGE_ENGINE_OPTIONS", "")

	cfg := ConfigFromEnv()
	if cfg.Path != "stockfish" {
		t.Errorf("expected default path stockfish, got %q", cfg.Path)
	}
	if cfg.Depth != 18 {
		t.Errorf("expected default depth 18, got %d", cfg.Depth)
	}
	if cfg.Options["Threads"] != "1" {
		t.Errorf("expected Threads=1 default, got %q", cfg.Options["Threads"])
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PAWNFORGE_ENGINE", "mock")
	t.Setenv("PAWNFORGE_ENGINE_DEPTH", "12")
	t.Setenv("PAWNFORGE_ENGINE_OPTIONS", "Hash=256, Threads=2")

	cfg := ConfigFromEnv()
	if cfg.Path != "mock" {
		t.Errorf("expected path mock, got %q", cfg.Path)
	}
	if cfg.Depth != 12 {
		t.Errorf("expected depth 12, got %d", cfg.Depth)
	}
	if cfg.Options["Hash"] != "256" {
		t.Errorf("expected Hash=256, got %q", cfg.Options["Hash"])
	}
	if cfg.Options["Threads"] != "2" {
		t.Errorf("expected Threads=2, got %q", cfg.Options["Threads"])
	}
}

func TestConfigFromEnv_BadDepthIgnored(t *testing.T) {
	t.Setenv("PAWNFORGE_ENGINE_DEPTH", "not-a-number")
	cfg := ConfigFromEnv()
	if cfg.Depth != 18 {
		t.Errorf("expected default depth on bad value, got %d", cfg.Depth)
	}
}
