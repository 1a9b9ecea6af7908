package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("default theme = %q", cfg.Theme)
	}
	if cfg.FrameIntervalMS != 16 {
		t.Errorf("default frame interval = %d, want 16", cfg.FrameIntervalMS)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SPLICE_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Log("CONFIG_TEST: TestSaveLoadRoundTrip | toml encode/decode")

	t.Setenv("SPLICE_CONFIG_DIR", t.TempDir())

	want := Config{
		Theme:           "latte",
		PaddingLeft:     2,
		PaddingRight:    6,
		FrameIntervalMS: 33,
		TickRateMS:      50,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPLICE_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = \"latte\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.Theme)
	}
	if cfg.PaddingLeft != Default().PaddingLeft {
		t.Errorf("PaddingLeft = %v, want default %v", cfg.PaddingLeft, Default().PaddingLeft)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"unknown theme", func(c *Config) { c.Theme = "nordic" }, true},
		{"negative padding", func(c *Config) { c.PaddingLeft = -1 }, true},
		{"zero frame interval normalized", func(c *Config) { c.FrameIntervalMS = 0 }, false},
		{"zero tick rate normalized", func(c *Config) { c.TickRateMS = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantErr && (cfg.FrameIntervalMS <= 0 || cfg.TickRateMS <= 0) {
				t.Errorf("intervals not normalized: %+v", cfg)
			}
		})
	}
}
