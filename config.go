package zscroll

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultMinSize         = 1
	DefaultScrollIncrement = 3
	DefaultSmoothDuration  = 150 * time.Millisecond
)

// DefaultDisableOver lists the element tags that keep their native wheel and
// keyboard behaviour.
var DefaultDisableOver = []string{"select", "option", "keygen", "datalist", "textarea"}

// WheelConfig configures mouse-wheel scrolling.
type WheelConfig struct {
	Enable bool
	// Axis is the default wheel axis when both bars are present.
	Axis Axis
	// DisableOver holds tags over which the wheel is left alone. A nil slice
	// selects DefaultDisableOver.
	DisableOver []string
}

// KeyboardConfig configures keyboard scrolling.
type KeyboardConfig struct {
	Enable      bool
	DisableOver []string
}

// Callbacks are invoked synchronously by the controller.
type Callbacks struct {
	// OnCreate runs once, when bars are first created.
	OnCreate func()
	// OnScroll runs after every accepted offset change.
	OnScroll func(axis Axis)
	// OnUpdate runs at the end of every layout update.
	OnUpdate func()
}

// AnimationConfig configures the SmoothScroller built from a config file.
type AnimationConfig struct {
	Duration time.Duration
	Easing   string
}

// Config is the per-instance configuration. It is treated as immutable once a
// controller has been created from it.
type Config struct {
	// MinSize is the minimum dragger length in cells.
	MinSize float64
	// Axes selects the active axes; AxesAuto detects them from the
	// container's overflow behaviour.
	Axes Axes
	// ScrollIncrement is the distance of one discrete scroll step.
	ScrollIncrement float64
	SmoothScrolling bool
	Placement       Placement
	AutoHide        bool

	Wheel    WheelConfig
	Keyboard KeyboardConfig

	Callbacks Callbacks
	Animation AnimationConfig
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinSize:         DefaultMinSize,
		Axes:            AxesAuto,
		ScrollIncrement: DefaultScrollIncrement,
		SmoothScrolling: true,
		Placement:       PlacementInside,
		AutoHide:        true,
		Wheel: WheelConfig{
			Enable: true,
			Axis:   AxisY,
		},
		Keyboard: KeyboardConfig{
			Enable: true,
		},
		Animation: AnimationConfig{
			Duration: DefaultSmoothDuration,
			Easing:   "smoothstep",
		},
	}
}

// normalize replaces malformed values with their defaults. Nothing is
// rejected.
func (c Config) normalize() Config {
	if c.MinSize < 0 {
		log.Printf("zscroll: invalid minSize %v, using %v", c.MinSize, DefaultMinSize)
		c.MinSize = DefaultMinSize
	}
	if c.ScrollIncrement <= 0 {
		if c.ScrollIncrement < 0 {
			log.Printf("zscroll: invalid scrollIncrement %v, using %v", c.ScrollIncrement, DefaultScrollIncrement)
		}
		c.ScrollIncrement = DefaultScrollIncrement
	}
	if c.Axes > AxesBoth {
		c.Axes = AxesAuto
	}
	if c.Placement > PlacementOutside {
		c.Placement = PlacementInside
	}
	if c.Wheel.Axis > AxisY {
		c.Wheel.Axis = AxisY
	}
	if c.Wheel.DisableOver == nil {
		c.Wheel.DisableOver = DefaultDisableOver
	}
	if c.Keyboard.DisableOver == nil {
		c.Keyboard.DisableOver = DefaultDisableOver
	}
	if c.Animation.Duration < 0 {
		c.Animation.Duration = DefaultSmoothDuration
	}
	return c
}

// tagSet builds a lower-cased lookup set of element tags.
func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

// configFile mirrors the JSON layout of a configuration file. Pointers
// distinguish missing keys from zero values.
type configFile struct {
	MinSize           *float64       `json:"minSize"`
	Axis              *string        `json:"axis"`
	ScrollIncrement   *float64       `json:"scrollIncrement"`
	SmoothScrolling   *bool          `json:"smoothScrolling"`
	ScrollbarPosition *string        `json:"scrollbarPosition"`
	AutoHideScrollbar *bool          `json:"autoHideScrollbar"`
	MouseWheel        *wheelFile     `json:"mouseWheel"`
	Keyboard          *keyboardFile  `json:"keyboard"`
	Animation         *animationFile `json:"animation"`
}

type wheelFile struct {
	Enable      *bool    `json:"enable"`
	Axis        *string  `json:"axis"`
	DisableOver []string `json:"disableOver"`
}

type keyboardFile struct {
	Enable      *bool    `json:"enable"`
	DisableOver []string `json:"disableOver"`
}

type animationFile struct {
	DurationMs *int    `json:"durationMs"`
	Easing     *string `json:"easing"`
}

// LoadConfig reads a JSON configuration file and overlays it on the
// defaults. Unreadable files are reported; malformed individual values fall
// back to their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("zscroll: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes JSON configuration data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("zscroll: parse config: %w", err)
	}

	if file.MinSize != nil {
		cfg.MinSize = *file.MinSize
	}
	if file.Axis != nil {
		if err := cfg.Axes.UnmarshalText([]byte(*file.Axis)); err != nil {
			log.Printf("zscroll: %v, using auto", err)
			cfg.Axes = AxesAuto
		}
	}
	if file.ScrollIncrement != nil {
		cfg.ScrollIncrement = *file.ScrollIncrement
	}
	if file.SmoothScrolling != nil {
		cfg.SmoothScrolling = *file.SmoothScrolling
	}
	if file.ScrollbarPosition != nil {
		if err := cfg.Placement.UnmarshalText([]byte(*file.ScrollbarPosition)); err != nil {
			log.Printf("zscroll: %v, using inside", err)
			cfg.Placement = PlacementInside
		}
	}
	if file.AutoHideScrollbar != nil {
		cfg.AutoHide = *file.AutoHideScrollbar
	}
	if w := file.MouseWheel; w != nil {
		if w.Enable != nil {
			cfg.Wheel.Enable = *w.Enable
		}
		if w.Axis != nil {
			if err := cfg.Wheel.Axis.UnmarshalText([]byte(*w.Axis)); err != nil {
				log.Printf("zscroll: mouseWheel: %v, using y", err)
				cfg.Wheel.Axis = AxisY
			}
		}
		if w.DisableOver != nil {
			cfg.Wheel.DisableOver = w.DisableOver
		}
	}
	if k := file.Keyboard; k != nil {
		if k.Enable != nil {
			cfg.Keyboard.Enable = *k.Enable
		}
		if k.DisableOver != nil {
			cfg.Keyboard.DisableOver = k.DisableOver
		}
	}
	if a := file.Animation; a != nil {
		if a.DurationMs != nil {
			cfg.Animation.Duration = time.Duration(*a.DurationMs) * time.Millisecond
		}
		if a.Easing != nil {
			cfg.Animation.Easing = *a.Easing
		}
	}
	return cfg.normalize(), nil
}
