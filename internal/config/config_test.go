package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := decode(defaultBricksYAML)
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config %+v, expected %+v", cfg, Default())
	}
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg, err := decode([]byte("gameplay:\n  lives: 7\n"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.BallSpeed != Default().Physics.BallSpeed {
		t.Errorf("ball speed = %d, expected default %d", cfg.Physics.BallSpeed, Default().Physics.BallSpeed)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  width: 13\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paddle.Width != 13 {
		t.Errorf("paddle width = %d, expected 13", cfg.Paddle.Width)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed explicit config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		width  int
		speed  int
	}{
		{DifficultyEasy, 5, 12, 250},
		{DifficultyNormal, 3, 10, 300},
		{DifficultyHard, 2, 7, 400},
	}

	for _, tt := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Gameplay.Lives != tt.lives {
			t.Errorf("%s: lives = %d, expected %d", tt.preset, cfg.Gameplay.Lives, tt.lives)
		}
		if cfg.Paddle.Width != tt.width {
			t.Errorf("%s: paddle width = %d, expected %d", tt.preset, cfg.Paddle.Width, tt.width)
		}
		if cfg.Physics.BallSpeed != tt.speed {
			t.Errorf("%s: ball speed = %d, expected %d", tt.preset, cfg.Physics.BallSpeed, tt.speed)
		}
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, ""} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, expected true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(nightmare) = true, expected false")
	}
}
