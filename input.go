package emojislider

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerTracker turns level-triggered "is the pointer down at (x, y)"
// samples into edge-triggered PointerEvents.
type pointerTracker struct {
	down         bool
	lastX, lastY float64
}

// update consumes one sample and returns the event it produces, if any.
func (t *pointerTracker) update(pressed bool, x, y float64) (PointerEvent, bool) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.lastX, t.lastY = x, y
		return PointerEvent{Kind: PointerPress, X: x, Y: y}, true
	case pressed && (x != t.lastX || y != t.lastY):
		t.lastX, t.lastY = x, y
		return PointerEvent{Kind: PointerMove, X: x, Y: y}, true
	case !pressed && t.down:
		t.down = false
		return PointerEvent{Kind: PointerRelease, X: t.lastX, Y: t.lastY}, true
	}
	return PointerEvent{}, false
}

// cancel ends a gesture in progress without a release, e.g. on focus loss.
func (t *pointerTracker) cancel() (PointerEvent, bool) {
	if !t.down {
		return PointerEvent{}, false
	}
	t.down = false
	return PointerEvent{Kind: PointerCancel, X: t.lastX, Y: t.lastY}, true
}

// PointerSource reads Ebitengine mouse and touch input and delivers it as
// PointerEvents in a view's local coordinates. Only the first touch is
// tracked; the mouse is ignored while a touch is active.
type PointerSource struct {
	view *View

	tracker  pointerTracker
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewPointerSource creates a source reporting coordinates local to view.
func NewPointerSource(view *View) *PointerSource {
	return &PointerSource{view: view}
}

// Poll returns the next event for this frame. An injected event, when
// queued, replaces real input for the frame.
func (p *PointerSource) Poll() (PointerEvent, bool) {
	if ev, ok, consumed := p.processInjectedInput(); consumed {
		return ev, ok
	}
	if !ebiten.IsFocused() {
		return p.tracker.cancel()
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if p.touching {
		still := false
		for _, id := range p.touchIDs {
			if id == p.touchID {
				still = true
				break
			}
		}
		if !still {
			p.touching = false
			return p.tracker.update(false, p.tracker.lastX, p.tracker.lastY)
		}
		tx, ty := ebiten.TouchPosition(p.touchID)
		return p.sample(true, float64(tx), float64(ty))
	}
	if len(p.touchIDs) > 0 && !p.tracker.down {
		p.touchID = p.touchIDs[0]
		p.touching = true
		tx, ty := ebiten.TouchPosition(p.touchID)
		return p.sample(true, float64(tx), float64(ty))
	}

	mx, my := ebiten.CursorPosition()
	return p.sample(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), float64(mx), float64(my))
}

// sample converts a screen-space sample to local space and tracks it.
func (p *PointerSource) sample(pressed bool, sx, sy float64) (PointerEvent, bool) {
	lx, ly := p.toLocal(sx, sy)
	return p.tracker.update(pressed, lx, ly)
}

func (p *PointerSource) toLocal(sx, sy float64) (float64, float64) {
	if p.view == nil {
		return sx, sy
	}
	return p.view.ScreenToLocal(sx, sy)
}

// HandleInput polls src once and feeds the result to the slider.
func (s *Slider) HandleInput(src *PointerSource) bool {
	ev, ok := src.Poll()
	if !ok {
		return false
	}
	return s.HandlePointer(ev)
}
