package emojislider

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
}

// gestureScript is the top-level structure of a gesture script.
type gestureScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// GestureRunner replays a scripted sequence of pointer gestures and slider
// calls across frames. Pointer actions go through a PointerSource's inject
// queue so they follow the same path as real input.
type GestureRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	screenshotQueue []string
}

// LoadGestureScript parses a YAML (or JSON) gesture script.
//
//	steps:
//	  - {action: drag, fromX: 24, fromY: 28, toX: 296, toY: 28, frames: 30}
//	  - {action: wait, frames: 60}
//	  - {action: reset}
func LoadGestureScript(data []byte) (*GestureRunner, error) {
	var script gestureScript
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "press", "move", "release", "cancel", "click", "drag", "wait",
		"reset", "commit", "progress", "average", "screenshot":
		return true
	}
	return false
}

// Done reports whether all steps have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it before polling src.
func (r *GestureRunner) Step(s *Slider, src *PointerSource) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		src.InjectPress(st.X, st.Y)
	case "move":
		src.InjectMove(st.X, st.Y)
	case "release":
		src.InjectRelease(st.X, st.Y)
	case "cancel":
		src.InjectCancel()
	case "click":
		src.InjectClick(st.X, st.Y)
	case "drag":
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		r.Screenshot(st.Label)
	case "reset":
		s.Reset()
	case "commit":
		s.CommitSelection()
	case "progress":
		s.SetProgress(st.Value)
	case "average":
		s.SetAveragePercent(st.Value)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
