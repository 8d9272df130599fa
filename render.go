package emojislider

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultGlyphBaseSize is the face size glyphs are shaped at before scaling.
const defaultGlyphBaseSize = 64

// GlyphFace draws single glyphs or short labels centered on a point at any
// size. It wraps Ebitengine's text/v2 with one shaped face size and scales
// per draw.
type GlyphFace struct {
	face *text.GoTextFace
	size float64
	lh   float64
}

// NewGlyphFace loads a TrueType or OpenType font. Use a color emoji font to
// draw emoji handles; the default Go font only covers text.
func NewGlyphFace(ttfData []byte, baseSize float64) (*GlyphFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("emojislider: failed to parse font data: %w", err)
	}
	if baseSize <= 0 {
		baseSize = defaultGlyphBaseSize
	}
	face := &text.GoTextFace{Source: source, Size: baseSize}
	m := face.Metrics()
	return &GlyphFace{face: face, size: baseSize, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// DefaultGlyphFace returns a face built from the Go Regular font.
func DefaultGlyphFace() (*GlyphFace, error) {
	return NewGlyphFace(goregular.TTF, defaultGlyphBaseSize)
}

// Measure returns s's size when drawn at size pixels.
func (g *GlyphFace) Measure(s string, size float64) (w, h float64) {
	w, h = text.Measure(s, g.face, g.lh)
	k := size / g.size
	return w * k, h * k
}

// Draw renders s centered on (cx, cy) at size pixels with the given opacity.
func (g *GlyphFace) Draw(dst *ebiten.Image, s string, cx, cy, size, alpha float64) {
	g.DrawColor(dst, s, cx, cy, size, ColorWhite, alpha)
}

// DrawColor is Draw with a tint.
func (g *GlyphFace) DrawColor(dst *ebiten.Image, s string, cx, cy, size float64, tint Color, alpha float64) {
	if dst == nil || s == "" || size <= 0 || alpha <= 0 {
		return
	}
	w, h := text.Measure(s, g.face, g.lh)
	k := size / g.size
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.Scale(float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, g.face, op)
}

// gradientSegments is how many flat slices approximate the track gradient.
const gradientSegments = 24

// Renderer draws a Slider with Ebitengine's vector and text packages. It
// registers itself as the slider's Invalidator and redraws nothing on its
// own; call Draw from the game's Draw.
type Renderer struct {
	slider *Slider
	glyphs *GlyphFace
	dirty  bool

	// Avatar is drawn next to the average indicator once a value is
	// committed. A filled circle is drawn when nil.
	Avatar *ebiten.Image
}

// NewRenderer creates a renderer for s using glyphs for the handle and popup.
func NewRenderer(s *Slider, glyphs *GlyphFace) *Renderer {
	r := &Renderer{slider: s, glyphs: glyphs, dirty: true}
	s.AddInvalidator(r)
	return r
}

// Invalidate implements Invalidator.
func (r *Renderer) Invalidate() { r.dirty = true }

// Dirty reports whether the slider changed since the last Draw.
func (r *Renderer) Dirty() bool { return r.dirty }

// Close detaches the renderer from its slider.
func (r *Renderer) Close() { r.slider.RemoveInvalidator(r) }

// Draw paints the slider onto dst at its View's screen position.
func (r *Renderer) Draw(dst *ebiten.Image) {
	s := r.slider
	cfg := s.cfg
	o := s.View.ScreenOrigin()
	track := s.metrics.TrackBounds()

	vector.DrawFilledRect(dst, float32(o.X), float32(o.Y), float32(cfg.Width), float32(cfg.Height), cfg.BarColor.RGBA(), true)

	// Track line, then the gradient fill up to the handle.
	cy := o.Y + track.Y + track.Height/2
	th := cfg.TrackThickness
	vector.DrawFilledRect(dst, float32(o.X+track.X), float32(cy-th/2), float32(track.Width), float32(th), cfg.TrackColor.RGBA(), true)
	r.drawGradient(dst, o.X+track.X, cy-th/2, track.Width*s.Progress(), th)

	if cfg.ShowAverage {
		r.drawAverage(dst, o)
	}

	thumb := s.ThumbBounds()
	if r.glyphs != nil {
		c := thumb.Center()
		r.glyphs.Draw(dst, cfg.Emoji, o.X+c.X, o.Y+c.Y, thumb.Width*s.ThumbScale(), 1)
	}

	if b, ok := s.popup.(*Bubble); ok && b.Visible() {
		r.drawBubble(dst, b, o)
	}
	r.dirty = false
}

func (r *Renderer) drawGradient(dst *ebiten.Image, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	cfg := r.slider.cfg
	seg := w / gradientSegments
	for i := 0; i < gradientSegments; i++ {
		t := (float64(i) + 0.5) / gradientSegments
		c := cfg.GradientStart.Lerp(cfg.GradientEnd, t)
		vector.DrawFilledRect(dst, float32(x+float64(i)*seg), float32(y), float32(seg+0.5), float32(h), c.RGBA(), false)
	}
}

func (r *Renderer) drawAverage(dst *ebiten.Image, o Vec2) {
	s := r.slider
	cfg := s.cfg
	c := o.Add(s.AverageCenter())

	if scale := s.AverageScale(); scale > 0 {
		radius := cfg.AverageHandleSize / 2 * scale
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(radius), ColorWhite.RGBA(), true)
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(radius*0.8), s.AverageColor().RGBA(), true)
	}

	scale := s.AvatarScale()
	if scale <= 0 {
		return
	}
	size := cfg.AvatarSize * scale
	ay := c.Y - cfg.AverageHandleSize/2 - cfg.AvatarSize/2
	if r.Avatar == nil {
		vector.DrawFilledCircle(dst, float32(c.X), float32(ay), float32(size/2), cfg.BubbleColor.RGBA(), true)
		return
	}
	bw, bh := r.Avatar.Bounds().Dx(), r.Avatar.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
	op.GeoM.Scale(size/float64(bw), size/float64(bh))
	op.GeoM.Translate(c.X, ay)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.Avatar, op)
}

func (r *Renderer) drawBubble(dst *ebiten.Image, b *Bubble, o Vec2) {
	s := r.slider
	cfg := s.cfg
	const padX, padY, textSize = 10.0, 6.0, 14.0

	label := b.Label()
	w, h := 2*padX, textSize+2*padY
	if r.glyphs != nil && label != "" {
		lw, _ := r.glyphs.Measure(label, textSize)
		w += lw
	}
	cx := o.X + cfg.Width/2 + float64(b.OffsetX())
	cy := o.Y - h/2 - b.Lift()

	bg := cfg.BubbleColor
	bg.A *= b.Alpha()
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), bg.RGBA(), true)
	if r.glyphs != nil && label != "" {
		r.glyphs.DrawColor(dst, label, cx, cy, textSize, Color{0.2, 0.2, 0.2, 1}, b.Alpha())
	}
}
