package emojislider

import "testing"

func TestFlyingEmojiTracking(t *testing.T) {
	f := NewFlyingEmoji(nil, DefaultFlyingEmojiConfig())
	if f.View == nil {
		t.Fatal("nil view should be replaced")
	}
	f.OnStopTrackingTouch() // not tracking: no-op
	if f.AliveCount() != 0 {
		t.Fatalf("alive = %d, want 0", f.AliveCount())
	}

	f.ProgressStarted("🎉")
	f.OnProgressChanged(120, 32)
	f.UpdateProgress(1)
	if !f.Tracking() || f.Anchor() != (Vec2{120, 32}) {
		t.Errorf("tracking=%v anchor=%v", f.Tracking(), f.Anchor())
	}
	if f.HeldSize() != f.Config().Size.Max {
		t.Errorf("HeldSize = %v, want %v", f.HeldSize(), f.Config().Size.Max)
	}

	f.OnStopTrackingTouch()
	if f.Tracking() {
		t.Error("still tracking after stop")
	}
	if want := 1 + f.Config().BurstCount; f.AliveCount() != want {
		t.Errorf("alive = %d, want %d", f.AliveCount(), want)
	}
}

func TestFlyingEmojiDirection(t *testing.T) {
	cfg := DefaultFlyingEmojiConfig()
	cfg.BurstCount = 0
	cfg.Drift = Range{}
	f := NewFlyingEmoji(nil, cfg)

	f.ProgressStarted("x")
	f.OnStopTrackingTouch()
	f.Update(0.1)
	if y := f.particles[0].y; y >= 0 {
		t.Errorf("up: y = %v, want negative", y)
	}

	f.Reset()
	f.SetDirection(FlyingDown)
	f.ProgressStarted("x")
	f.OnStopTrackingTouch()
	f.Update(0.1)
	if y := f.particles[0].y; y <= 0 {
		t.Errorf("down: y = %v, want positive", y)
	}
}

func TestFlyingEmojiExpires(t *testing.T) {
	f := NewFlyingEmoji(nil, DefaultFlyingEmojiConfig())
	f.ProgressStarted("x")
	f.OnStopTrackingTouch()

	f.Update(f.Config().Lifetime.Min / 2)
	for i := 0; i < f.AliveCount(); i++ {
		if a := f.particles[i].alpha; a <= 0 || a >= 1 {
			t.Errorf("particle %d alpha = %v, want in (0, 1)", i, a)
		}
	}
	f.Update(f.Config().Lifetime.Max)
	if f.AliveCount() != 0 {
		t.Errorf("alive = %d after max lifetime, want 0", f.AliveCount())
	}
}

func TestFlyingEmojiPoolLimit(t *testing.T) {
	cfg := DefaultFlyingEmojiConfig()
	cfg.MaxParticles = 4
	f := NewFlyingEmoji(nil, cfg)
	f.ProgressStarted("x")
	f.OnStopTrackingTouch()
	if f.AliveCount() != 4 {
		t.Errorf("alive = %d, want pool size 4", f.AliveCount())
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: 2, Max: 3}
	for i := 0; i < 100; i++ {
		if v := r.Random(); v < 2 || v > 3 {
			t.Fatalf("Random() = %v outside [2, 3]", v)
		}
	}
	if (Range{Min: 5, Max: 5}).Random() != 5 {
		t.Error("degenerate range should return Min")
	}
}
