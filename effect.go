package emojislider

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// EffectLayer receives the handle position while a drag is in progress. Per
// gesture the slider calls ProgressStarted once, then any number of
// OnProgressChanged + UpdateProgress pairs, then OnStopTrackingTouch once.
type EffectLayer interface {
	ProgressStarted(glyph string)
	// OnProgressChanged receives the handle position in the layer's own
	// coordinate space.
	OnProgressChanged(paddingLeft, paddingTop float64)
	UpdateProgress(value float64)
	OnStopTrackingTouch()
}

// noopEffect stands in when no layer is attached.
type noopEffect struct{}

func (noopEffect) ProgressStarted(string)             {}
func (noopEffect) OnProgressChanged(float64, float64) {}
func (noopEffect) UpdateProgress(float64)             {}
func (noopEffect) OnStopTrackingTouch()               {}

// FlyingEmojiConfig controls the emoji burst released at the end of a drag.
type FlyingEmojiConfig struct {
	// MaxParticles is the pool size. New emojis are silently dropped when full.
	MaxParticles int
	// Direction selects whether released emojis rise or fall.
	Direction FlyingDirection
	// Lifetime is the range of emoji lifetimes in seconds.
	Lifetime Range
	// Speed is the range of vertical speeds in pixels per second.
	Speed Range
	// Drift is the range of horizontal speeds in pixels per second.
	Drift Range
	// Size maps drag progress to the held emoji's size in pixels.
	Size Range
	// BurstCount is how many smaller emojis accompany the released one.
	BurstCount int
	// BurstScale is the size of burst emojis relative to the released one.
	BurstScale Range
}

// DefaultFlyingEmojiConfig returns the stock burst tuning.
func DefaultFlyingEmojiConfig() FlyingEmojiConfig {
	return FlyingEmojiConfig{
		MaxParticles: 64,
		Direction:    FlyingUp,
		Lifetime:     Range{Min: 1.2, Max: 1.8},
		Speed:        Range{Min: 180, Max: 260},
		Drift:        Range{Min: -40, Max: 40},
		Size:         Range{Min: 28, Max: 96},
		BurstCount:   5,
		BurstScale:   Range{Min: 0.25, Max: 0.45},
	}
}

// flyingParticle holds per-emoji simulation state.
type flyingParticle struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64
	size    float64
	alpha   float64
	glyph   string
}

// FlyingEmoji is the default effect layer: while dragging it shows the glyph
// above the handle growing with progress, and on release it launches that
// glyph plus a small burst away from the slider.
type FlyingEmoji struct {
	// View is the layer's frame in the layout tree. Its screen origin is the
	// target origin used when mapping the handle position.
	View *View

	config    FlyingEmojiConfig
	particles []flyingParticle
	alive     int

	glyph    string
	tracking bool
	anchor   Vec2
	progress float64
}

// NewFlyingEmoji creates a layer with a preallocated pool.
func NewFlyingEmoji(view *View, cfg FlyingEmojiConfig) *FlyingEmoji {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 64
	}
	if view == nil {
		view = NewView("flying_emoji")
	}
	return &FlyingEmoji{
		View:      view,
		config:    cfg,
		particles: make([]flyingParticle, max),
	}
}

// ScreenOrigin implements Locator.
func (f *FlyingEmoji) ScreenOrigin() Vec2 {
	return f.View.ScreenOrigin()
}

// Config returns a pointer to the layer's config for live tuning.
func (f *FlyingEmoji) Config() *FlyingEmojiConfig {
	return &f.config
}

// SetDirection changes where future releases fly.
func (f *FlyingEmoji) SetDirection(d FlyingDirection) {
	f.config.Direction = d
}

// ProgressStarted begins holding glyph over the handle.
func (f *FlyingEmoji) ProgressStarted(glyph string) {
	f.glyph = glyph
	f.tracking = true
}

// OnProgressChanged moves the held glyph's anchor.
func (f *FlyingEmoji) OnProgressChanged(paddingLeft, paddingTop float64) {
	f.anchor = Vec2{paddingLeft, paddingTop}
}

// UpdateProgress sets the drag progress that sizes the held glyph.
func (f *FlyingEmoji) UpdateProgress(value float64) {
	f.progress = clamp01(value)
}

// OnStopTrackingTouch releases the held glyph and its burst.
func (f *FlyingEmoji) OnStopTrackingTouch() {
	if !f.tracking {
		return
	}
	f.tracking = false
	size := f.HeldSize()
	f.spawn(size, 0)
	for i := 0; i < f.config.BurstCount; i++ {
		f.spawn(size*f.config.BurstScale.Random(), f.config.Drift.Random())
	}
}

// Tracking reports whether a glyph is currently held.
func (f *FlyingEmoji) Tracking() bool { return f.tracking }

// Anchor returns the last handle position received.
func (f *FlyingEmoji) Anchor() Vec2 { return f.anchor }

// HeldSize returns the held glyph's size for the current progress.
func (f *FlyingEmoji) HeldSize() float64 {
	return f.config.Size.Lerp(f.progress)
}

// AliveCount returns the number of emojis in flight.
func (f *FlyingEmoji) AliveCount() int { return f.alive }

// Reset drops the held glyph and every emoji in flight.
func (f *FlyingEmoji) Reset() {
	f.tracking = false
	f.alive = 0
}

func (f *FlyingEmoji) spawn(size, vx float64) {
	if f.alive >= len(f.particles) {
		return
	}
	p := &f.particles[f.alive]
	speed := f.config.Speed.Random()
	if f.config.Direction == FlyingUp {
		speed = -speed
	}
	p.x, p.y = f.anchor.X, f.anchor.Y
	p.vx, p.vy = vx, speed
	p.life = f.config.Lifetime.Random()
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life
	p.size = size
	p.alpha = 1
	p.glyph = f.glyph
	f.alive++
}

// Update advances every emoji in flight by dt seconds.
func (f *FlyingEmoji) Update(dt float64) {
	i := 0
	for i < f.alive {
		p := &f.particles[i]
		p.life -= dt
		if p.life <= 0 {
			// Swap with last alive particle.
			f.alive--
			f.particles[i] = f.particles[f.alive]
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.alpha = p.life / p.maxLife
		i++
	}
}

// Draw renders the held glyph and every emoji in flight onto dst, in the
// layer's local space offset by the View's screen origin.
func (f *FlyingEmoji) Draw(dst *ebiten.Image, glyphs *GlyphFace) {
	o := f.ScreenOrigin()
	if f.tracking && f.glyph != "" {
		glyphs.Draw(dst, f.glyph, o.X+f.anchor.X, o.Y+f.anchor.Y, f.HeldSize(), 1)
	}
	for i := 0; i < f.alive; i++ {
		p := &f.particles[i]
		glyphs.Draw(dst, p.glyph, o.X+p.x, o.Y+p.y, p.size, p.alpha)
	}
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
