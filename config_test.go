package zscroll

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinSize != DefaultMinSize || cfg.ScrollIncrement != DefaultScrollIncrement {
		t.Errorf("sizes = %v/%v", cfg.MinSize, cfg.ScrollIncrement)
	}
	if !cfg.SmoothScrolling || !cfg.AutoHide || cfg.Placement != PlacementInside || cfg.Axes != AxesAuto {
		t.Errorf("flags = %+v", cfg)
	}
	if !slices.Equal(cfg.Wheel.DisableOver, DefaultDisableOver) || !slices.Equal(cfg.Keyboard.DisableOver, DefaultDisableOver) {
		t.Errorf("disableOver = %v / %v", cfg.Wheel.DisableOver, cfg.Keyboard.DisableOver)
	}
	if cfg.Animation.Duration != DefaultSmoothDuration {
		t.Errorf("duration = %v", cfg.Animation.Duration)
	}
}

func TestParseConfig_Values(t *testing.T) {
	data := `{
		"minSize": 4,
		"axis": "x",
		"scrollIncrement": 5,
		"smoothScrolling": false,
		"scrollbarPosition": "outside",
		"autoHideScrollbar": false,
		"mouseWheel": {"enable": true, "axis": "x", "disableOver": []},
		"keyboard": {"enable": false, "disableOver": ["pre"]},
		"animation": {"durationMs": 300, "easing": "linear"}
	}`
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinSize != 4 || cfg.Axes != AxesX || cfg.ScrollIncrement != 5 {
		t.Errorf("minSize %v axes %v increment %v", cfg.MinSize, cfg.Axes, cfg.ScrollIncrement)
	}
	if cfg.SmoothScrolling || cfg.AutoHide || cfg.Placement != PlacementOutside {
		t.Errorf("flags = %+v", cfg)
	}
	if cfg.Wheel.Axis != AxisX || len(cfg.Wheel.DisableOver) != 0 {
		t.Errorf("wheel = %+v", cfg.Wheel)
	}
	if cfg.Keyboard.Enable || !slices.Equal(cfg.Keyboard.DisableOver, []string{"pre"}) {
		t.Errorf("keyboard = %+v", cfg.Keyboard)
	}
	if cfg.Animation.Duration != 300*time.Millisecond || cfg.Animation.Easing != "linear" {
		t.Errorf("animation = %+v", cfg.Animation)
	}
}

func TestParseConfig_Fallbacks(t *testing.T) {
	data := `{
		"minSize": -3,
		"axis": "diagonal",
		"scrollIncrement": -1,
		"scrollbarPosition": "above",
		"mouseWheel": {"axis": "z"},
		"animation": {"durationMs": -5}
	}`
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinSize != DefaultMinSize || cfg.ScrollIncrement != DefaultScrollIncrement {
		t.Errorf("sizes = %v/%v", cfg.MinSize, cfg.ScrollIncrement)
	}
	if cfg.Axes != AxesAuto || cfg.Placement != PlacementInside || cfg.Wheel.Axis != AxisY {
		t.Errorf("axes %v placement %v wheel %v", cfg.Axes, cfg.Placement, cfg.Wheel.Axis)
	}
	if cfg.Animation.Duration != DefaultSmoothDuration {
		t.Errorf("duration = %v", cfg.Animation.Duration)
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"minSize": `))
	if err == nil {
		t.Fatal("expected an error")
	}
	if cfg.ScrollIncrement != DefaultScrollIncrement {
		t.Errorf("malformed input did not return defaults")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scroll.json")
	if err := os.WriteFile(path, []byte(`{"scrollIncrement": 7}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScrollIncrement != 7 {
		t.Errorf("increment = %v, want 7", cfg.ScrollIncrement)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestNewControllerNormalizesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSize = -1
	cfg.ScrollIncrement = 0
	c := NewController(Binding{Container: newFakeContainer(20, 100)}, cfg)
	if c.Config().MinSize != DefaultMinSize || c.Config().ScrollIncrement != DefaultScrollIncrement {
		t.Errorf("config = %+v", c.Config())
	}
}

func TestNewControllerZeroConfigUsesDefaults(t *testing.T) {
	c := NewController(Binding{Container: newFakeContainer(20, 100)}, Config{})
	cfg := c.Config()
	if !cfg.Wheel.Enable || !cfg.Keyboard.Enable || !cfg.SmoothScrolling || !cfg.AutoHide {
		t.Errorf("zero config disabled a default switch: %+v", cfg)
	}
	if cfg.ScrollIncrement != DefaultScrollIncrement || cfg.Animation.Duration != DefaultSmoothDuration {
		t.Errorf("config = %+v", cfg)
	}
}
