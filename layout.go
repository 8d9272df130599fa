package emojislider

// Metrics exposes the geometry the core reads every frame. Coordinates are
// local to the slider.
type Metrics interface {
	// TrackBounds is the track's touch box.
	TrackBounds() Rect
	// HandleSize is the handle's intrinsic width and height.
	HandleSize() float64
}

// BoxMetrics centers a track of BarHeight vertically inside a Width x Height
// box, inset by HorizontalPadding on both sides.
type BoxMetrics struct {
	Width, Height     float64
	HorizontalPadding float64
	BarHeight         float64
	Handle            float64
}

// TrackBounds implements Metrics.
func (m BoxMetrics) TrackBounds() Rect {
	h := m.BarHeight
	if h <= 0 || h > m.Height {
		h = m.Height
	}
	w := m.Width - 2*m.HorizontalPadding
	if w < 0 {
		w = 0
	}
	return Rect{X: m.HorizontalPadding, Y: m.Height/2 - h/2, Width: w, Height: h}
}

// HandleSize implements Metrics.
func (m BoxMetrics) HandleSize() float64 {
	return m.Handle
}

// metricsFromConfig builds the default Metrics for cfg.
func metricsFromConfig(cfg Config) BoxMetrics {
	return BoxMetrics{
		Width:             cfg.Width,
		Height:            cfg.Height,
		HorizontalPadding: cfg.HorizontalPadding,
		BarHeight:         cfg.BarHeight,
		Handle:            cfg.HandleSize,
	}
}

// progressAt converts a local x coordinate into a track position. A track
// with no width always yields 0.
func progressAt(m Metrics, x float64) float64 {
	track := m.TrackBounds()
	if !(track.Width > 0) {
		return 0
	}
	return clamp01((x - track.X) / track.Width)
}

// thumbCenterX returns the handle's center measured from the track's left edge.
func thumbCenterX(m Metrics, progress float64) float64 {
	return progress * m.TrackBounds().Width
}

// thumbBounds returns the handle's box in local coordinates.
func thumbBounds(m Metrics, progress float64) Rect {
	track := m.TrackBounds()
	size := m.HandleSize()
	c := Vec2{X: track.X + thumbCenterX(m, progress), Y: track.Y + track.Height/2}
	return Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size}
}
