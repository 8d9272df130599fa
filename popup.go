package emojislider

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPopupDuration is how long the average popup stays up.
const DefaultPopupDuration = 2500 * time.Millisecond

// Popup shows a transient bubble pointing at the average value. offsetX is
// in pixels relative to the widget center; the popup dismisses itself after
// duration.
type Popup interface {
	Show(offsetX int, duration time.Duration)
	Dismiss()
}

// labeler is implemented by popups that can display text.
type labeler interface {
	SetLabel(text string)
}

type noopPopup struct{}

func (noopPopup) Show(int, time.Duration) {}
func (noopPopup) Dismiss()                {}

type bubblePhase uint8

const (
	bubbleHidden bubblePhase = iota
	bubbleEntering
	bubbleHolding
	bubbleLeaving
)

// Bubble is the default Popup. It fades in, holds until its duration
// expires or it is dismissed, then fades out. Call Update every frame.
type Bubble struct {
	// Fade is the fade in/out duration in seconds.
	Fade float32
	// Rise is how far, in pixels, the bubble slides up while fading in.
	Rise float32

	label     string
	offsetX   int
	remaining float64
	phase     bubblePhase
	alpha     float64
	lift      float64
	fadeTween *gween.Tween
	liftTween *gween.Tween
}

// NewBubble creates a hidden bubble with the stock fade timing.
func NewBubble() *Bubble {
	return &Bubble{Fade: 0.18, Rise: 8}
}

// SetLabel sets the text shown inside the bubble.
func (b *Bubble) SetLabel(text string) {
	b.label = text
}

// Label returns the text shown inside the bubble.
func (b *Bubble) Label() string { return b.label }

// Show starts fading the bubble in at offsetX. Showing an already visible
// bubble moves it and restarts its timer.
func (b *Bubble) Show(offsetX int, duration time.Duration) {
	b.offsetX = offsetX
	b.remaining = duration.Seconds()
	b.phase = bubbleEntering
	b.fadeTween = gween.New(float32(b.alpha), 1, b.Fade, ease.OutCubic)
	b.liftTween = gween.New(float32(b.lift), b.Rise, b.Fade, ease.OutBack)
}

// Dismiss starts fading the bubble out. No-op when already hidden or leaving.
func (b *Bubble) Dismiss() {
	if b.phase == bubbleHidden || b.phase == bubbleLeaving {
		return
	}
	b.phase = bubbleLeaving
	b.fadeTween = gween.New(float32(b.alpha), 0, b.Fade, ease.InCubic)
	b.liftTween = nil
}

// Update advances the fade and the auto-dismiss timer by dt seconds.
func (b *Bubble) Update(dt float64) {
	switch b.phase {
	case bubbleHidden:
		return
	case bubbleEntering, bubbleHolding:
		b.remaining -= dt
		if b.phase == bubbleEntering {
			v, done := b.fadeTween.Update(float32(dt))
			b.alpha = float64(v)
			if b.liftTween != nil {
				l, _ := b.liftTween.Update(float32(dt))
				b.lift = float64(l)
			}
			if done {
				b.phase = bubbleHolding
			}
		}
		if b.remaining <= 0 {
			b.Dismiss()
		}
	case bubbleLeaving:
		v, done := b.fadeTween.Update(float32(dt))
		b.alpha = float64(v)
		if done {
			b.phase = bubbleHidden
			b.alpha = 0
			b.lift = 0
		}
	}
}

// Visible reports whether any part of the bubble is on screen.
func (b *Bubble) Visible() bool { return b.phase != bubbleHidden }

// Alpha returns the current opacity in [0, 1].
func (b *Bubble) Alpha() float64 { return b.alpha }

// Lift returns how far the bubble has slid up, in pixels.
func (b *Bubble) Lift() float64 { return b.lift }

// OffsetX returns the offset passed to the last Show.
func (b *Bubble) OffsetX() int { return b.offsetX }
