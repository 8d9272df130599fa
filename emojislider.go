package emojislider

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default bubble and avatar ring color.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates each channel from c towards other by t. Alpha is taken
// from c, matching how the average indicator tints its ring.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
		A: c.A,
	}
}

// RGBA converts to a premultiplied color.RGBA for Ebitengine drawing calls.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	to8 := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (Color, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Vec2 is a 2D vector used for origins, offsets and translations.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range.
// Used by the flying emoji layer for randomized particle parameters.
type Range struct {
	Min, Max float64
}

// Lerp returns the point t of the way from Min to Max.
func (r Range) Lerp(t float64) float64 {
	return lerp(r.Min, r.Max, t)
}

// PointerKind identifies a kind of pointer event delivered to the slider.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // pointer went down
	PointerMove                       // pointer moved while down
	PointerRelease                    // pointer went up
	PointerCancel                     // gesture was taken away (treated as release)
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample in slider-local coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// EventType identifies a slider event forwarded to an EventStore.
type EventType uint8

const (
	EventBeginTracking EventType = iota // a drag gesture grabbed the handle
	EventProgress                       // progress changed during a drag
	EventEndTracking                    // the drag gesture ended
	EventCommit                         // a value was committed and the slider locked
	EventReset                          // the slider was unlocked
)

func (t EventType) String() string {
	switch t {
	case EventBeginTracking:
		return "begin-tracking"
	case EventProgress:
		return "progress"
	case EventEndTracking:
		return "end-tracking"
	case EventCommit:
		return "commit"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// FlyingDirection selects where released emojis float.
type FlyingDirection uint8

const (
	FlyingUp   FlyingDirection = iota // emojis rise (default)
	FlyingDown                        // emojis fall
)

func (d FlyingDirection) String() string {
	if d == FlyingDown {
		return "down"
	}
	return "up"
}

// lerp linearly interpolates between a and b by t.
// Exact at both ends.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
