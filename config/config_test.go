package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Field.BaselineCount != 50 {
		t.Errorf("expected baseline 50, got %d", cfg.Field.BaselineCount)
	}
	if cfg.Derived.MaxCount != 60 {
		t.Errorf("expected max count 60, got %d", cfg.Derived.MaxCount)
	}
	if cfg.Derived.PruneDelay != 3*time.Second {
		t.Errorf("expected prune delay 3s, got %v", cfg.Derived.PruneDelay)
	}
	if cfg.Derived.RestartDelay != 100*time.Millisecond {
		t.Errorf("expected restart delay 100ms, got %v", cfg.Derived.RestartDelay)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("expected 5 palette entries, got %d", len(cfg.Palette))
	}
	if cfg.Render.LinkDistance != 150 {
		t.Errorf("expected link distance 150, got %v", cfg.Render.LinkDistance)
	}
	if cfg.Pointer.RevertHighlight {
		t.Error("highlight reversion should be off by default")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("field:\n  baseline_count: 20\nburst:\n  count: 4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	if cfg.Field.BaselineCount != 20 {
		t.Errorf("expected overridden baseline 20, got %d", cfg.Field.BaselineCount)
	}
	// Untouched fields keep their defaults
	if cfg.Field.BurstHeadroom != 10 {
		t.Errorf("expected default headroom 10, got %d", cfg.Field.BurstHeadroom)
	}
	if cfg.Derived.MaxCount != 30 {
		t.Errorf("expected derived max 30, got %d", cfg.Derived.MaxCount)
	}
	if cfg.Derived.BurstStep <= 1.57 || cfg.Derived.BurstStep >= 1.58 {
		t.Errorf("expected burst step ~pi/2, got %v", cfg.Derived.BurstStep)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative baseline": "field:\n  baseline_count: -1\n",
		"zero link":         "render:\n  link_distance: 0\n",
		"inverted radius":   "field:\n  radius_min: 4\n  radius_max: 2\n",
		"empty palette":     "palette: []\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Pointer.Radius = 120

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading yaml: %v", err)
	}
	if back.Pointer.Radius != 120 {
		t.Errorf("expected pointer radius 120 after reload, got %v", back.Pointer.Radius)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg() before Init()")
		}
	}()
	Cfg()
}
