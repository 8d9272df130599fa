package emojislider

import "log/slog"

// debugLog logs one line per moving spring after a tick.
// Only called when Slider.debug is true.
func (s *Slider) debugLog() {
	steps := s.springs.lastSteps
	if steps == 0 {
		return
	}
	for i := range s.springs.springs {
		sp := &s.springs.springs[i]
		if !sp.used {
			continue
		}
		s.logger.Debug("spring tick",
			slog.String("spring", SpringID(i).String()),
			slog.Int("steps", steps),
			slog.Float64("current", sp.current),
			slog.Float64("target", sp.target),
			slog.Float64("velocity", sp.velocity),
			slog.Bool("resting", sp.resting),
		)
	}
}

// debugCheckViewDepth warns when a view sits deeper than debugMaxViewDepth,
// which usually means views are being re-parented in a loop.
const debugMaxViewDepth = 32

func debugCheckViewDepth(logger *slog.Logger, v *View) {
	depth := 0
	for p := v; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxViewDepth {
		logger.Warn("view tree too deep", "view", v.Name, "depth", depth, "threshold", debugMaxViewDepth)
	}
}
