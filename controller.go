package emojislider

import "fmt"

// InteractionState is the pointer state machine's current state.
type InteractionState uint8

const (
	StateIdle           InteractionState = iota // waiting for a press
	StatePressedOutside                         // press missed the handle and track; ignored until release
	StateDragging                               // handle grabbed, moves update progress
	StateLocked                                 // value committed, input ignored until Reset
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressedOutside:
		return "pressed-outside"
	case StateDragging:
		return "dragging"
	case StateLocked:
		return "locked"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Spring targets driven by the controller.
const (
	thumbPressedScale = 0.9
	thumbIdleScale    = 1.0
)

// gestureSink receives the controller's side effects. Slider implements it.
type gestureSink interface {
	beginTracking()
	trackTo(progress float64)
	// commitSelection locks the slider when reselection is disallowed.
	commitSelection() bool
	endTracking()
}

// InteractionController turns pointer events into state changes, spring
// targets and tracking notifications.
type InteractionController struct {
	state   *SliderState
	springs *SpringModel
	metrics Metrics
	sink    gestureSink
	current InteractionState

	// ScrollAnywhere lets a press anywhere inside the track start a drag,
	// not only a press on the handle.
	ScrollAnywhere bool
}

func newInteractionController(state *SliderState, springs *SpringModel, metrics Metrics, sink gestureSink) *InteractionController {
	return &InteractionController{
		state:          state,
		springs:        springs,
		metrics:        metrics,
		sink:           sink,
		ScrollAnywhere: true,
	}
}

// State returns the current state.
func (c *InteractionController) State() InteractionState {
	return c.current
}

// HandlePointer feeds one event through the state machine and reports
// whether it caused a transition or update. Events are ignored entirely while
// touch is disabled.
func (c *InteractionController) HandlePointer(ev PointerEvent) bool {
	if c.state.TouchDisabled {
		return false
	}
	switch ev.Kind {
	case PointerPress:
		return c.press(ev.X, ev.Y)
	case PointerMove:
		return c.move(ev.X)
	case PointerRelease, PointerCancel:
		return c.release()
	}
	return false
}

func (c *InteractionController) press(x, y float64) bool {
	switch c.current {
	case StateLocked:
		return false
	case StateDragging:
		// The previous release never arrived; close that gesture first.
		c.release()
		if c.current == StateLocked {
			return true
		}
	}

	if !c.grabs(x, y) {
		c.current = StatePressedOutside
		return false
	}
	c.current = StateDragging
	c.state.ThumbSelected = true
	c.springs.SetTarget(SpringThumb, thumbPressedScale)
	c.sink.beginTracking()
	return true
}

// grabs reports whether a press at (x, y) picks up the handle.
func (c *InteractionController) grabs(x, y float64) bool {
	if thumbBounds(c.metrics, c.state.Progress()).Contains(x, y) {
		return true
	}
	return c.ScrollAnywhere && c.metrics.TrackBounds().Contains(x, y)
}

func (c *InteractionController) move(x float64) bool {
	if c.current != StateDragging {
		return false
	}
	c.state.SetProgress(progressAt(c.metrics, x))
	c.sink.trackTo(c.state.Progress())
	return true
}

func (c *InteractionController) release() bool {
	switch c.current {
	case StatePressedOutside:
		c.current = StateIdle
		return false
	case StateDragging:
		c.current = StateIdle
		c.state.ThumbSelected = false
		c.springs.SetTarget(SpringThumb, thumbIdleScale)
		c.sink.commitSelection()
		c.sink.endTracking()
		return true
	}
	return false
}

// lock moves the machine into StateLocked. A drag in progress is dropped
// without notifications; callers close it first.
func (c *InteractionController) lock() {
	c.current = StateLocked
	c.state.ThumbSelected = false
}

// unlock returns a locked machine to StateIdle.
func (c *InteractionController) unlock() {
	if c.current == StateLocked {
		c.current = StateIdle
	}
}
