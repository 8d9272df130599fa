package emojislider

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshInterval = 0.5

// FPSOverlay is a small debug panel showing the actual FPS, the actual TPS
// and the slider's interaction state. The panel image is redrawn at most
// twice a second.
type FPSOverlay struct {
	slider  *Slider
	img     *ebiten.Image
	elapsed float64
	label   string
}

// NewFPSOverlay creates an overlay reporting on s. s may be nil.
func NewFPSOverlay(s *Slider) *FPSOverlay {
	// 140x48 fits three DebugPrint lines.
	return &FPSOverlay{slider: s, img: ebiten.NewImage(140, 48), elapsed: fpsRefreshInterval}
}

// Update advances the refresh timer by dt seconds.
func (o *FPSOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsRefreshInterval {
		return
	}
	o.elapsed = 0
	o.label = o.text(ebiten.ActualFPS(), ebiten.ActualTPS())

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.label)
}

func (o *FPSOverlay) text(fps, tps float64) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if o.slider != nil {
		s += fmt.Sprintf("\n%v", o.slider.InteractionState())
	}
	return s
}

// Draw paints the panel at (x, y) on dst.
func (o *FPSOverlay) Draw(dst *ebiten.Image, x, y float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	dst.DrawImage(o.img, &op)
}

// Close releases the panel image.
func (o *FPSOverlay) Close() {
	o.img.Deallocate()
}
