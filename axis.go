package zscroll

import (
	"fmt"
	"strings"
)

// Axis identifies one independent scroll dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

var allAxes = [...]Axis{AxisX, AxisY}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

func (a Axis) other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "x", "h", "horizontal":
		*a = AxisX
	case "y", "v", "vertical":
		*a = AxisY
	default:
		return fmt.Errorf("zscroll: unknown axis %q", text)
	}
	return nil
}

// Axes is a set of axes. The zero value requests auto-detection from the
// container's overflow behaviour.
type Axes uint8

const (
	AxesX Axes = 1 << iota
	AxesY

	AxesAuto Axes = 0
	AxesBoth      = AxesX | AxesY
)

// Has reports whether axis is part of the set.
func (a Axes) Has(axis Axis) bool {
	return a&axisBit(axis) != 0
}

func axisBit(axis Axis) Axes {
	if axis == AxisX {
		return AxesX
	}
	return AxesY
}

func (a Axes) String() string {
	switch a {
	case AxesAuto:
		return "auto"
	case AxesX:
		return "x"
	case AxesY:
		return "y"
	}
	return "xy"
}

// MarshalText implements encoding.TextMarshaler.
func (a Axes) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts "x", "y", "xy", "yx" and "auto".
func (a *Axes) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	if value == "auto" || value == "" {
		*a = AxesAuto
		return nil
	}
	var axes Axes
	for _, r := range value {
		switch r {
		case 'x':
			axes |= AxesX
		case 'y':
			axes |= AxesY
		default:
			return fmt.Errorf("zscroll: unknown axes %q", text)
		}
	}
	*a = axes
	return nil
}

// Overflow is a container's native overflow behaviour along one axis.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

// scrollable reports whether the overflow mode asks for a scrollbar.
func (o Overflow) scrollable() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Placement positions the bars relative to the content viewport.
type Placement uint8

const (
	// PlacementInside overlays the bars on the viewport's last column/row.
	PlacementInside Placement = iota
	// PlacementOutside reserves a gutter next to the viewport.
	PlacementOutside
)

func (p Placement) String() string {
	if p == PlacementOutside {
		return "outside"
	}
	return "inside"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "inside":
		*p = PlacementInside
	case "outside":
		*p = PlacementOutside
	default:
		return fmt.Errorf("zscroll: unknown scrollbar position %q", text)
	}
	return nil
}
