package emojislider

import (
	"fmt"
	"log/slog"
)

// Invalidator is notified whenever the slider needs to be redrawn.
type Invalidator interface {
	Invalidate()
}

// SliderEvent is forwarded to an EventStore for every tracking and lock
// transition.
type SliderEvent struct {
	Type           EventType
	Progress       float64
	AveragePercent float64
}

// EventStore receives slider events. The ecs package bridges it into a
// Donburi world.
type EventStore interface {
	EmitEvent(event SliderEvent)
}

// SavedState is the persisted subset of a slider.
type SavedState struct {
	Position       float64 `yaml:"position"`
	BubbleColor    Color   `yaml:"bubble_color"`
	BarColor       Color   `yaml:"bar_color"`
	CommittedValue float64 `yaml:"committed_value"`
}

// updater is implemented by collaborators that animate on the slider's clock.
type updater interface {
	Update(dt float64)
}

// Slider is an emoji slider widget. It owns the value state, the springs and
// the pointer state machine, and talks to its effect layer, popup and
// redraw observers through interfaces. All methods must be called from the
// goroutine driving the frame loop.
type Slider struct {
	// View places the slider in the layout tree. Its screen origin is used to
	// map the handle into the effect layer's coordinate space.
	View *View

	// OnProgress is called with the new progress on every drag move.
	OnProgress func(progress float64)
	// OnBeginTracking is called when a drag grabs the handle.
	OnBeginTracking func()
	// OnEndTracking is called after a drag ends, once the effect layer has
	// been told to stop.
	OnEndTracking func()

	cfg        Config
	state      *SliderState
	springs    *SpringModel
	controller *InteractionController
	metrics    Metrics

	effect   EffectLayer
	effectAt Locator
	popup    Popup

	invalidators []Invalidator
	store        EventStore
	logger       *slog.Logger
	debug        bool
}

// New creates a slider from cfg. cfg is validated and normalized first.
func New(cfg Config) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("emojislider: %w", err)
	}
	springs, err := NewSpringModel(cfg.Springs.byID())
	if err != nil {
		return nil, err
	}
	springs.SetCurrent(SpringThumb, thumbIdleScale)

	s := &Slider{
		View:    NewView("emoji_slider"),
		cfg:     cfg,
		state:   NewSliderState(),
		springs: springs,
		metrics: metricsFromConfig(cfg),
		effect:  noopEffect{},
		popup:   noopPopup{},
		logger:  slog.New(slog.DiscardHandler),
	}
	s.state.SetProgress(cfg.Progress)
	s.state.SetAveragePercent(cfg.AverageProgress)
	s.state.AllowReselection = cfg.AllowReselection
	s.state.TouchDisabled = cfg.TouchDisabled

	s.controller = newInteractionController(s.state, s.springs, s.metrics, s)
	s.controller.ScrollAnywhere = cfg.ScrollAnywhere

	springs.AddListener(s)
	return s, nil
}

// Config returns the normalized construction config.
func (s *Slider) Config() Config { return s.cfg }

// State returns the underlying value model.
func (s *Slider) State() *SliderState { return s.state }

// Springs returns the spring model.
func (s *Slider) Springs() *SpringModel { return s.springs }

// --- Frame loop ---

// Update advances springs and any self-animating collaborators by dt seconds.
func (s *Slider) Update(dt float64) {
	if !s.springs.Idle() {
		s.springs.Tick(dt)
		if s.debug {
			s.debugLog()
		}
	}
	if u, ok := s.popup.(updater); ok {
		u.Update(dt)
	}
	if u, ok := s.effect.(updater); ok {
		u.Update(dt)
	}
}

// NeedsTick reports whether any spring is still moving.
func (s *Slider) NeedsTick() bool {
	return !s.springs.Idle()
}

// --- Values ---

// Progress returns the handle position in [0, 1].
func (s *Slider) Progress() float64 { return s.state.Progress() }

// SetProgress moves the handle without a gesture. Listeners are not called.
func (s *Slider) SetProgress(v float64) {
	if s.state.SetProgress(v) {
		s.invalidate()
	}
}

// AveragePercent returns the average indicator position in [0, 1].
func (s *Slider) AveragePercent() float64 { return s.state.AveragePercent() }

// SetAveragePercent moves the average indicator and shows the popup.
func (s *Slider) SetAveragePercent(v float64) {
	s.state.SetAveragePercent(v)
	s.ShowAveragePopup()
	s.invalidate()
}

// Emoji returns the handle glyph.
func (s *Slider) Emoji() string { return s.cfg.Emoji }

// SetEmoji replaces the handle glyph. Empty strings are ignored.
func (s *Slider) SetEmoji(glyph string) {
	if glyph == "" || glyph == s.cfg.Emoji {
		return
	}
	s.cfg.Emoji = glyph
	s.invalidate()
}

// SetTouchDisabled enables or disables pointer handling.
func (s *Slider) SetTouchDisabled(disabled bool) {
	s.state.TouchDisabled = disabled
}

// SetAllowReselection controls whether releasing a drag locks the slider.
func (s *Slider) SetAllowReselection(allow bool) {
	s.state.AllowReselection = allow
}

// SetScrollAnywhere controls whether a press anywhere on the track grabs the
// handle.
func (s *Slider) SetScrollAnywhere(on bool) {
	s.controller.ScrollAnywhere = on
}

// --- Commit / reset ---

// CommitSelection records the current progress and locks the slider. A drag
// in progress is ended first. Returns false, changing nothing, when
// reselection is allowed or the slider is already locked.
func (s *Slider) CommitSelection() bool {
	switch s.controller.State() {
	case StateLocked:
		return false
	case StateDragging:
		s.controller.release()
		return s.controller.State() == StateLocked
	}
	return s.commitSelection()
}

// commitSelection implements gestureSink.
func (s *Slider) commitSelection() bool {
	if !s.state.commit() {
		return false
	}
	s.springs.SetTarget(SpringAverage, 1)
	s.springs.SetTarget(SpringThumb, 0)
	s.springs.SetTarget(SpringAvatar, 1)
	s.controller.lock()
	s.ShowAveragePopup()
	s.logger.Debug("slider committed",
		"value", s.state.CommittedValue(),
		"average", s.state.AveragePercent())
	s.emit(EventCommit)
	s.invalidate()
	return true
}

// Reset unlocks a committed slider and hides the average and avatar.
func (s *Slider) Reset() {
	s.state.reset()
	s.springs.SetTarget(SpringAverage, 0)
	s.springs.SetTarget(SpringThumb, thumbIdleScale)
	s.springs.SetTarget(SpringAvatar, 0)
	s.controller.unlock()
	s.logger.Debug("slider reset")
	s.emit(EventReset)
	s.invalidate()
}

// --- Input ---

// HandlePointer feeds a pointer event in slider-local coordinates. Every
// press dismisses the popup, even one the slider then ignores.
func (s *Slider) HandlePointer(ev PointerEvent) bool {
	if ev.Kind == PointerPress {
		s.popup.Dismiss()
	}
	before := s.controller.State()
	handled := s.controller.HandlePointer(ev)
	if after := s.controller.State(); after != before {
		s.logger.Debug("slider state", "from", before.String(), "to", after.String(), "event", ev.Kind.String())
	}
	if handled {
		s.invalidate()
	}
	return handled
}

// InteractionState returns the pointer state machine's state.
func (s *Slider) InteractionState() InteractionState {
	return s.controller.State()
}

// beginTracking implements gestureSink.
func (s *Slider) beginTracking() {
	s.effect.ProgressStarted(s.cfg.Emoji)
	s.pushEffect(s.state.Progress())
	if s.OnBeginTracking != nil {
		s.OnBeginTracking()
	}
	s.emit(EventBeginTracking)
}

// trackTo implements gestureSink.
func (s *Slider) trackTo(progress float64) {
	s.pushEffect(progress)
	if s.OnProgress != nil {
		s.OnProgress(progress)
	}
	s.emit(EventProgress)
}

// endTracking implements gestureSink.
func (s *Slider) endTracking() {
	s.effect.OnStopTrackingTouch()
	if s.OnEndTracking != nil {
		s.OnEndTracking()
	}
	s.emit(EventEndTracking)
}

// pushEffect maps the handle at progress into the effect layer's space.
func (s *Slider) pushEffect(progress float64) {
	if s.effectAt == nil {
		return
	}
	track := s.metrics.TrackBounds()
	vc := DpToPx(s.cfg.EffectOffsetDp, s.cfg.Density)
	t := frameFor(s.View, s.effectAt, track.X, progress*track.Width, vc).Translation()
	s.effect.OnProgressChanged(t.X, t.Y)
	s.effect.UpdateProgress(progress)
}

// --- Collaborators ---

// SetEffectLayer attaches layer. at locates the layer's on-screen origin;
// when nil and layer implements Locator, the layer itself is used. A nil
// layer detaches the current one.
func (s *Slider) SetEffectLayer(layer EffectLayer, at Locator) {
	if layer == nil {
		s.effect, s.effectAt = noopEffect{}, nil
		return
	}
	if at == nil {
		at, _ = layer.(Locator)
	}
	s.effect, s.effectAt = layer, at
}

// SetPopup replaces the popup. nil disables it.
func (s *Slider) SetPopup(p Popup) {
	if p == nil {
		p = noopPopup{}
	}
	s.popup = p
}

// ShowAveragePopup shows the popup over the average indicator.
func (s *Slider) ShowAveragePopup() {
	if l, ok := s.popup.(labeler); ok {
		l.SetLabel(fmt.Sprintf("%d%%", int(s.state.AveragePercent()*100+0.5)))
	}
	s.popup.Show(PopupOffset(s.state.AveragePercent(), s.metrics.TrackBounds().Width), s.cfg.PopupDuration)
}

// Metrics returns the geometry collaborator.
func (s *Slider) Metrics() Metrics { return s.metrics }

// SetMetrics replaces the geometry collaborator.
func (s *Slider) SetMetrics(m Metrics) {
	if m == nil {
		m = metricsFromConfig(s.cfg)
	}
	s.metrics = m
	s.controller.metrics = m
	s.invalidate()
}

// Resize rebuilds the default metrics for a new widget size.
func (s *Slider) Resize(width, height float64) {
	s.cfg.Width, s.cfg.Height = width, height
	s.SetMetrics(metricsFromConfig(s.cfg))
}

// SetEventStore sets the store that receives slider events. nil disables
// forwarding.
func (s *Slider) SetEventStore(store EventStore) {
	s.store = store
}

func (s *Slider) emit(t EventType) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(SliderEvent{
		Type:           t,
		Progress:       s.state.Progress(),
		AveragePercent: s.state.AveragePercent(),
	})
}

// SetLogger replaces the logger. nil restores the discarding default.
func (s *Slider) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.logger = l
}

// SetDebugMode enables per-tick spring logging at debug level.
func (s *Slider) SetDebugMode(on bool) {
	s.debug = on
	if on {
		debugCheckViewDepth(s.logger, s.View)
	}
}

// --- Invalidation ---

// AddInvalidator registers inv. Registering twice is a no-op.
func (s *Slider) AddInvalidator(inv Invalidator) {
	if inv == nil {
		return
	}
	for _, existing := range s.invalidators {
		if existing == inv {
			return
		}
	}
	s.invalidators = append(s.invalidators, inv)
}

// RemoveInvalidator unregisters inv.
func (s *Slider) RemoveInvalidator(inv Invalidator) {
	for i, existing := range s.invalidators {
		if existing == inv {
			s.invalidators = append(s.invalidators[:i], s.invalidators[i+1:]...)
			return
		}
	}
}

func (s *Slider) invalidate() {
	for _, inv := range s.invalidators {
		inv.Invalidate()
	}
}

// StartAnimation subscribes the slider to its springs so every spring update
// requests a redraw. New calls it already.
func (s *Slider) StartAnimation() { s.springs.AddListener(s) }

// StopAnimation unsubscribes the slider from its springs. Springs keep
// moving on Update but no longer trigger redraws.
func (s *Slider) StopAnimation() { s.springs.RemoveListener(s) }

// SpringUpdated implements SpringListener.
func (s *Slider) SpringUpdated(SpringID, float64) { s.invalidate() }

// SpringAtRest implements SpringListener.
func (s *Slider) SpringAtRest(SpringID) { s.invalidate() }

// --- Animated geometry ---

// ThumbScale returns the handle's current scale.
func (s *Slider) ThumbScale() float64 { return s.springs.Current(SpringThumb) }

// AverageScale returns the average indicator's current scale.
func (s *Slider) AverageScale() float64 { return s.springs.Current(SpringAverage) }

// AvatarScale returns the avatar's current scale.
func (s *Slider) AvatarScale() float64 { return s.springs.Current(SpringAvatar) }

// ThumbBounds returns the handle's unscaled box in local coordinates.
func (s *Slider) ThumbBounds() Rect {
	return thumbBounds(s.metrics, s.state.Progress())
}

// AverageCenter returns the center of the average indicator in local
// coordinates.
func (s *Slider) AverageCenter() Vec2 {
	track := s.metrics.TrackBounds()
	return Vec2{
		X: track.X + s.state.AveragePercent()*track.Width,
		Y: track.Y + track.Height/2,
	}
}

// AverageColor returns the gradient color at the average position.
func (s *Slider) AverageColor() Color {
	return s.cfg.GradientStart.Lerp(s.cfg.GradientEnd, s.state.AveragePercent())
}

// BarColor returns the track background color.
func (s *Slider) BarColor() Color { return s.cfg.BarColor }

// BubbleColor returns the popup bubble color.
func (s *Slider) BubbleColor() Color { return s.cfg.BubbleColor }

// --- Persistence ---

// Snapshot returns the state worth persisting across restarts.
func (s *Slider) Snapshot() SavedState {
	return SavedState{
		Position:       s.state.Progress(),
		BubbleColor:    s.cfg.BubbleColor,
		BarColor:       s.cfg.BarColor,
		CommittedValue: s.state.CommittedValue(),
	}
}

// Restore applies a snapshot. The committed value is restored as data only;
// the slider stays unlocked.
func (s *Slider) Restore(st SavedState) {
	s.state.SetProgress(st.Position)
	s.state.committedValue = clamp01(st.CommittedValue)
	s.cfg.BubbleColor = st.BubbleColor
	s.cfg.BarColor = st.BarColor
	s.invalidate()
}
