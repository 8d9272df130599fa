// Package emojislider is an emoji slider widget for [Ebitengine].
//
// A slider shows an emoji handle over a gradient track. Dragging the handle
// squeezes it on a spring, streams its position to an effect layer that
// holds a growing copy of the emoji, and on release launches that emoji away
// from the slider. When reselection is disabled the release commits the
// value: the handle shrinks away, an average indicator and avatar spring in,
// and a popup bubble shows the average.
//
// # Quick start
//
//	slider, err := emojislider.New(emojislider.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	glyphs, _ := emojislider.DefaultGlyphFace()
//	renderer := emojislider.NewRenderer(slider, glyphs)
//	input := emojislider.NewPointerSource(slider.View)
//
//	// in ebiten.Game.Update:
//	slider.HandleInput(input)
//	slider.Update(1.0 / 60)
//
//	// in ebiten.Game.Draw:
//	renderer.Draw(screen)
//
// # Springs
//
// [SpringModel] owns the thumb, average and avatar springs. Constants use
// Origami's tension/friction scale and are integrated with [harmonica] at a
// fixed 1 ms step. The model has no clock; [Slider.Update] ticks it and
// [Slider.NeedsTick] reports when it can stop.
//
// # Coordinates
//
// The effect layer usually lives in another part of the layout. Both the
// slider and the layer carry a [View]; [ComputeOffset] maps the handle from
// the slider's screen origin into the layer's. Any [Locator] can stand in
// for a View.
//
// # Configuration
//
// [Config] decodes from YAML with [LoadConfigFile]. Unknown keys are
// rejected. [SavedState] captures what should survive a restart.
//
// Slider events can be forwarded to a [Donburi] world with the ecs
// subpackage.
//
// [Ebitengine]: https://ebitengine.org
// [harmonica]: https://github.com/charmbracelet/harmonica
// [Donburi]: https://github.com/yohamta/donburi
package emojislider
