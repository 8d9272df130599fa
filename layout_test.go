package emojislider

import "testing"

func TestBoxMetricsTrackBounds(t *testing.T) {
	m := BoxMetrics{Width: 320, Height: 56, HorizontalPadding: 24, BarHeight: 48, Handle: 48}
	want := Rect{X: 24, Y: 4, Width: 272, Height: 48}
	if got := m.TrackBounds(); got != want {
		t.Errorf("TrackBounds = %+v, want %+v", got, want)
	}
}

func TestBoxMetricsTooNarrow(t *testing.T) {
	m := BoxMetrics{Width: 30, Height: 20, HorizontalPadding: 24, BarHeight: 48}
	got := m.TrackBounds()
	if got.Width != 0 {
		t.Errorf("Width = %v, want 0", got.Width)
	}
	if got.Height != 20 || got.Y != 0 {
		t.Errorf("bar taller than the box should fill it, got %+v", got)
	}
}

func TestProgressAt(t *testing.T) {
	m := BoxMetrics{Width: 320, Height: 56, HorizontalPadding: 24, BarHeight: 48}
	cases := []struct{ x, want float64 }{
		{24, 0},
		{296, 1},
		{160, 0.5},
		{0, 0},
		{400, 1},
	}
	for _, c := range cases {
		if got := progressAt(m, c.x); got != c.want {
			t.Errorf("progressAt(%v) = %v, want %v", c.x, got, c.want)
		}
	}

	if got := progressAt(BoxMetrics{Width: 10, HorizontalPadding: 5}, 7); got != 0 {
		t.Errorf("zero-width track progress = %v, want 0", got)
	}
}

func TestThumbBounds(t *testing.T) {
	m := BoxMetrics{Width: 320, Height: 56, HorizontalPadding: 24, BarHeight: 48, Handle: 48}
	got := thumbBounds(m, 0.5)
	want := Rect{X: 136, Y: 4, Width: 48, Height: 48}
	if got != want {
		t.Errorf("thumbBounds = %+v, want %+v", got, want)
	}
	if c := got.Center(); c != (Vec2{160, 28}) {
		t.Errorf("center = %v, want (160, 28)", c)
	}
}
