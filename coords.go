package emojislider

import "math"

// DefaultEffectOffsetDp is the vertical distance, in density-independent
// units, between the slider's top edge and the point where flying emojis are
// anchored.
const DefaultEffectOffsetDp = 32.0

// DpToPx converts density-independent units to whole pixels, rounding half up.
func DpToPx(dp, density float64) float64 {
	return math.Floor(dp*density + 0.5)
}

// ComputeOffset returns the translation that moves an effect layer whose
// on-screen origin is targetOrigin onto the handle of a slider whose
// on-screen origin is selfOrigin.
//
//	x = selfOrigin.X + trackLeftPadding + thumbCenterX - targetOrigin.X
//	y = selfOrigin.Y + verticalConstant - targetOrigin.Y
//
// thumbCenterX is measured from the track's left edge. The result is plain
// arithmetic; it does not detect views that have not been laid out yet.
func ComputeOffset(selfOrigin Vec2, trackLeftPadding, thumbCenterX, verticalConstant float64, targetOrigin Vec2) Vec2 {
	return Vec2{
		X: selfOrigin.X + trackLeftPadding + thumbCenterX - targetOrigin.X,
		Y: selfOrigin.Y + verticalConstant - targetOrigin.Y,
	}
}

// CoordinateFrame is the per-frame input of ComputeOffset in point form.
type CoordinateFrame struct {
	OriginSelf   Vec2
	OriginTarget Vec2
	LocalOffset  Vec2 // widget origin to handle anchor
}

// Translation returns OriginSelf + LocalOffset - OriginTarget.
func (f CoordinateFrame) Translation() Vec2 {
	return f.OriginSelf.Add(f.LocalOffset).Sub(f.OriginTarget)
}

// frameFor resolves both origins through their locators and builds the frame
// for a handle at thumbCenterX along a track starting at trackLeft.
func frameFor(self, target Locator, trackLeft, thumbCenterX, verticalConstant float64) CoordinateFrame {
	return CoordinateFrame{
		OriginSelf:   self.ScreenOrigin(),
		OriginTarget: target.ScreenOrigin(),
		LocalOffset:  Vec2{X: trackLeft + thumbCenterX, Y: verticalConstant},
	}
}

// mapRange maps v from [fromLow, fromHigh] onto [toLow, toHigh]. A degenerate
// source range maps everything to toLow.
func mapRange(v, fromLow, fromHigh, toLow, toHigh float64) float64 {
	span := fromHigh - fromLow
	if span == 0 {
		return toLow
	}
	return toLow + (v-fromLow)/span*(toHigh-toLow)
}

// PopupOffset returns the signed horizontal offset, relative to the widget
// center, of the average value along a track of width trackWidth.
func PopupOffset(averagePercent, trackWidth float64) int {
	if !(trackWidth > 0) {
		return 0
	}
	half := trackWidth / 2
	return int(math.Round(mapRange(clamp01(averagePercent)*trackWidth, 0, trackWidth, -half, half)))
}
