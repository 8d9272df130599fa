package emojislider

import (
	"errors"
	"math"
	"testing"
	"time"
)

type fakePopup struct {
	shows    int
	dismiss  int
	offset   int
	duration time.Duration
	label    string
}

func (p *fakePopup) Show(offsetX int, d time.Duration) {
	p.shows++
	p.offset = offsetX
	p.duration = d
}

func (p *fakePopup) Dismiss()             { p.dismiss++ }
func (p *fakePopup) SetLabel(text string) { p.label = text }

type fakeEffect struct {
	calls   []string
	glyph   string
	anchors []Vec2
	values  []float64
}

func (e *fakeEffect) ProgressStarted(glyph string) {
	e.calls = append(e.calls, "start")
	e.glyph = glyph
}

func (e *fakeEffect) OnProgressChanged(left, top float64) {
	e.calls = append(e.calls, "changed")
	e.anchors = append(e.anchors, Vec2{left, top})
}

func (e *fakeEffect) UpdateProgress(v float64) {
	e.calls = append(e.calls, "update")
	e.values = append(e.values, v)
}

func (e *fakeEffect) OnStopTrackingTouch() { e.calls = append(e.calls, "stop") }

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

type recordingStore struct{ events []SliderEvent }

func (r *recordingStore) EmitEvent(e SliderEvent) { r.events = append(r.events, e) }

func newTestSlider(t *testing.T, mutate func(*Config)) *Slider {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func settle(s *Slider) {
	for i := 0; i < 180 && s.NeedsTick(); i++ {
		s.Update(frame)
	}
}

func drag(s *Slider, fromX, toX float64) {
	s.HandlePointer(press(fromX, 28))
	s.HandlePointer(move(toX, 28))
	s.HandlePointer(release(toX, 28))
}

func TestNewDefaults(t *testing.T) {
	s := newTestSlider(t, nil)
	if s.Progress() != 0.5 || s.AveragePercent() != 0.5 {
		t.Errorf("values = (%v, %v), want (0.5, 0.5)", s.Progress(), s.AveragePercent())
	}
	if s.ThumbScale() != 1 || s.AverageScale() != 0 || s.AvatarScale() != 0 {
		t.Errorf("scales = (%v, %v, %v), want (1, 0, 0)", s.ThumbScale(), s.AverageScale(), s.AvatarScale())
	}
	if s.NeedsTick() {
		t.Error("new slider should not need ticks")
	}
	if s.InteractionState() != StateIdle {
		t.Errorf("state = %v, want idle", s.InteractionState())
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	cfg = DefaultConfig()
	cfg.Springs.Thumb.Friction = 0
	_, err := New(cfg)
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidSpring) {
		t.Errorf("err = %v, want ErrInvalidConfig wrapping ErrInvalidSpring", err)
	}
}

func TestNewNormalizesProgress(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.Progress = 42 })
	if math.Abs(s.Progress()-0.42) > 1e-12 {
		t.Errorf("progress = %v, want 0.42", s.Progress())
	}
}

func TestSliderDragNotifiesInOrder(t *testing.T) {
	s := newTestSlider(t, nil)
	effect := &fakeEffect{}
	s.SetEffectLayer(effect, NewView("layer"))

	var order []string
	s.OnBeginTracking = func() { order = append(order, "begin") }
	s.OnProgress = func(p float64) { order = append(order, "progress") }
	s.OnEndTracking = func() {
		order = append(order, "end")
		if last := effect.calls[len(effect.calls)-1]; last != "stop" {
			t.Errorf("effect not stopped before end listener, last call %q", last)
		}
	}

	drag(s, 160, 228)

	wantOrder := []string{"begin", "progress", "end"}
	if len(order) != len(wantOrder) {
		t.Fatalf("listener order = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("listener %d = %q, want %q", i, order[i], wantOrder[i])
		}
	}
	if effect.glyph != "😍" {
		t.Errorf("effect glyph = %q", effect.glyph)
	}
	if effect.calls[0] != "start" || effect.calls[len(effect.calls)-1] != "stop" {
		t.Errorf("effect calls = %v, want start ... stop", effect.calls)
	}
	if got := s.Progress(); got != 0.75 {
		t.Errorf("progress = %v, want 0.75", got)
	}
}

func TestSliderMapsHandleIntoEffectLayer(t *testing.T) {
	s := newTestSlider(t, nil)
	root := NewView("root")
	root.AddChild(s.View)
	s.View.SetPosition(100, 200)
	layer := NewView("layer")
	layer.SetPosition(50, 50)
	root.AddChild(layer)

	effect := &fakeEffect{}
	s.SetEffectLayer(effect, layer)

	s.HandlePointer(press(160, 28))
	s.HandlePointer(move(92, 28)) // progress 0.25

	last := effect.anchors[len(effect.anchors)-1]
	// x = 100 + 24 + 0.25*272 - 50, y = 200 + 32 - 50
	if last != (Vec2{142, 182}) {
		t.Errorf("anchor = %v, want (142, 182)", last)
	}
	if v := effect.values[len(effect.values)-1]; v != 0.25 {
		t.Errorf("UpdateProgress = %v, want 0.25", v)
	}
}

func TestSliderEffectOffsetUsesDensity(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.Density = 2.625 })
	effect := &fakeEffect{}
	s.SetEffectLayer(effect, NewView("layer"))
	s.HandlePointer(press(160, 28))
	if got := effect.anchors[0].Y; got != 84 {
		t.Errorf("vertical offset = %v, want 84", got)
	}
}

func TestSliderFlyingEmojiAsLocator(t *testing.T) {
	s := newTestSlider(t, nil)
	fe := NewFlyingEmoji(nil, DefaultFlyingEmojiConfig())
	s.SetEffectLayer(fe, nil)

	drag(s, 160, 296)
	if fe.Anchor() != (Vec2{296, 32}) {
		t.Errorf("anchor = %v, want (296, 32)", fe.Anchor())
	}
	if fe.AliveCount() != 1+fe.Config().BurstCount {
		t.Errorf("alive = %d, want %d", fe.AliveCount(), 1+fe.Config().BurstCount)
	}
}

func TestSliderDetachEffect(t *testing.T) {
	s := newTestSlider(t, nil)
	effect := &fakeEffect{}
	s.SetEffectLayer(effect, nil)
	s.SetEffectLayer(nil, nil)
	drag(s, 160, 200)
	if len(effect.calls) != 0 {
		t.Errorf("detached effect called: %v", effect.calls)
	}
}

func TestSliderCommit(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AllowReselection = false })
	popup := &fakePopup{}
	s.SetPopup(popup)
	store := &recordingStore{}
	s.SetEventStore(store)

	drag(s, 160, 228)
	if s.InteractionState() != StateLocked {
		t.Fatalf("state = %v, want locked", s.InteractionState())
	}
	if s.State().CommittedValue() != 0.75 {
		t.Errorf("committed = %v, want 0.75", s.State().CommittedValue())
	}
	if !s.State().TouchDisabled {
		t.Error("touch should be disabled")
	}
	sp := s.Springs()
	if sp.Target(SpringAverage) != 1 || sp.Target(SpringThumb) != 0 || sp.Target(SpringAvatar) != 1 {
		t.Errorf("targets = (%v, %v, %v), want (1, 0, 1)",
			sp.Target(SpringAverage), sp.Target(SpringThumb), sp.Target(SpringAvatar))
	}
	if popup.shows != 1 || popup.offset != 0 || popup.duration != DefaultPopupDuration || popup.label != "50%" {
		t.Errorf("popup = %+v, want one show at 0 for 2.5s labelled 50%%", popup)
	}

	settle(s)
	if s.NeedsTick() {
		t.Fatal("springs did not settle")
	}
	if s.ThumbScale() != 0 || s.AverageScale() != 1 || s.AvatarScale() != 1 {
		t.Errorf("scales = (%v, %v, %v), want (0, 1, 1)", s.ThumbScale(), s.AverageScale(), s.AvatarScale())
	}

	var types []EventType
	for _, e := range store.events {
		types = append(types, e.Type)
	}
	want := []EventType{EventBeginTracking, EventProgress, EventCommit, EventEndTracking}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestSliderCommitNoopWithReselection(t *testing.T) {
	s := newTestSlider(t, nil)
	popup := &fakePopup{}
	s.SetPopup(popup)
	if s.CommitSelection() {
		t.Error("CommitSelection should be a no-op while reselection is allowed")
	}
	drag(s, 160, 200)
	if s.InteractionState() != StateIdle || s.State().TouchDisabled {
		t.Errorf("state = %v touchDisabled=%v", s.InteractionState(), s.State().TouchDisabled)
	}
	if popup.shows != 0 || s.Springs().Target(SpringAverage) != 0 {
		t.Error("no-op commit changed springs or popup")
	}
}

func TestSliderCommitDuringDrag(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AllowReselection = false })
	ended := 0
	s.OnEndTracking = func() { ended++ }

	s.HandlePointer(press(160, 28))
	s.HandlePointer(move(200, 28))
	if !s.CommitSelection() {
		t.Fatal("CommitSelection during drag should commit")
	}
	if ended != 1 {
		t.Errorf("end listener calls = %d, want 1", ended)
	}
	if s.InteractionState() != StateLocked {
		t.Errorf("state = %v, want locked", s.InteractionState())
	}
	if s.CommitSelection() {
		t.Error("second commit should be a no-op")
	}
}

func TestSliderReset(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AllowReselection = false })
	popup := &fakePopup{}
	s.SetPopup(popup)
	drag(s, 160, 228)
	settle(s)

	s.Reset()
	if s.InteractionState() != StateIdle || s.State().TouchDisabled {
		t.Errorf("after reset: state=%v touchDisabled=%v", s.InteractionState(), s.State().TouchDisabled)
	}
	sp := s.Springs()
	if sp.Target(SpringAverage) != 0 || sp.Target(SpringThumb) != 1 || sp.Target(SpringAvatar) != 0 {
		t.Errorf("targets = (%v, %v, %v), want (0, 1, 0)",
			sp.Target(SpringAverage), sp.Target(SpringThumb), sp.Target(SpringAvatar))
	}
	if popup.shows != 1 {
		t.Errorf("reset showed popup: shows = %d", popup.shows)
	}

	settle(s)
	if s.ThumbScale() != 1 || s.AverageScale() != 0 || s.AvatarScale() != 0 {
		t.Errorf("scales = (%v, %v, %v), want (1, 0, 0)", s.ThumbScale(), s.AverageScale(), s.AvatarScale())
	}

	// Interactive again.
	s.HandlePointer(press(228, 28))
	if s.InteractionState() != StateDragging {
		t.Errorf("state = %v, want dragging", s.InteractionState())
	}
}

func TestSliderPressDismissesPopup(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AllowReselection = false })
	popup := &fakePopup{}
	s.SetPopup(popup)
	drag(s, 160, 200)

	s.HandlePointer(press(5, 5))
	if popup.dismiss == 0 {
		t.Error("press should dismiss the popup even while locked")
	}
}

func TestSliderSetAveragePercentShowsPopup(t *testing.T) {
	s := newTestSlider(t, nil)
	popup := &fakePopup{}
	s.SetPopup(popup)
	s.SetAveragePercent(0.75)
	if s.AveragePercent() != 0.75 {
		t.Errorf("average = %v", s.AveragePercent())
	}
	// 0.75 of a 272px track is 68px right of center.
	if popup.shows != 1 || popup.offset != 68 || popup.label != "75%" {
		t.Errorf("popup = %+v", popup)
	}
}

func TestSliderInvalidators(t *testing.T) {
	s := newTestSlider(t, nil)
	inv := &countingInvalidator{}
	s.AddInvalidator(inv)
	s.AddInvalidator(inv)

	s.SetProgress(0.7)
	if inv.n != 1 {
		t.Errorf("invalidations = %d, want 1 (duplicate add must not double count)", inv.n)
	}
	s.SetProgress(0.7)
	if inv.n != 1 {
		t.Error("unchanged progress invalidated")
	}

	s.HandlePointer(press(214, 28)) // handle at 0.7 -> x 214.4
	n := inv.n
	s.Update(frame)
	if inv.n <= n {
		t.Error("spring motion did not invalidate")
	}

	s.StopAnimation()
	n = inv.n
	s.Update(frame)
	if inv.n != n {
		t.Error("stopped animation still invalidates")
	}
	s.StartAnimation()

	s.RemoveInvalidator(inv)
	n = inv.n
	s.SetProgress(0.1)
	if inv.n != n {
		t.Error("removed invalidator still called")
	}
}

func TestSliderAverageColor(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AverageProgress = 0 })
	if s.AverageColor() != s.cfg.GradientStart {
		t.Errorf("color at 0 = %v, want %v", s.AverageColor(), s.cfg.GradientStart)
	}
	s.State().SetAveragePercent(1)
	end := s.cfg.GradientEnd
	end.A = s.cfg.GradientStart.A
	if s.AverageColor() != end {
		t.Errorf("color at 1 = %v, want %v", s.AverageColor(), end)
	}
}

func TestSliderSnapshotRestore(t *testing.T) {
	s := newTestSlider(t, func(c *Config) { c.AllowReselection = false })
	drag(s, 160, 228)
	snap := s.Snapshot()
	if snap.Position != 0.75 || snap.CommittedValue != 0.75 || snap.BarColor != s.BarColor() {
		t.Errorf("snapshot = %+v", snap)
	}

	other := newTestSlider(t, nil)
	other.Restore(snap)
	if other.Progress() != 0.75 || other.State().CommittedValue() != 0.75 {
		t.Errorf("restored progress=%v committed=%v", other.Progress(), other.State().CommittedValue())
	}
	if other.InteractionState() != StateIdle {
		t.Errorf("restore should not lock, state = %v", other.InteractionState())
	}
}

func TestSliderSetEmoji(t *testing.T) {
	s := newTestSlider(t, nil)
	s.SetEmoji("")
	if s.Emoji() != "😍" {
		t.Errorf("empty SetEmoji changed glyph to %q", s.Emoji())
	}
	s.SetEmoji("🔥")
	effect := &fakeEffect{}
	s.SetEffectLayer(effect, nil)
	s.HandlePointer(press(160, 28))
	if effect.glyph != "🔥" {
		t.Errorf("effect glyph = %q, want 🔥", effect.glyph)
	}
}

func TestSliderResize(t *testing.T) {
	s := newTestSlider(t, nil)
	s.Resize(120, 56)
	if got := s.Metrics().TrackBounds().Width; got != 72 {
		t.Errorf("track width = %v, want 72", got)
	}
	s.HandlePointer(press(60, 28))
	s.HandlePointer(move(96, 28))
	if s.Progress() != 1 {
		t.Errorf("progress = %v, want 1", s.Progress())
	}
}
