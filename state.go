package emojislider

// DefaultProgress is the initial handle and average position.
const DefaultProgress = 0.5

// SliderState is the logical value model. Positions are clamped to [0, 1]
// when written and never adjusted when read.
type SliderState struct {
	progress       float64
	averagePercent float64
	committedValue float64

	// ThumbSelected is true while a pointer drags the handle.
	ThumbSelected bool
	// TouchDisabled suppresses all pointer handling.
	TouchDisabled bool
	// AllowReselection keeps the slider interactive after a release. When
	// false, releasing a drag commits the value and locks the slider.
	AllowReselection bool
}

// NewSliderState returns a state with both positions at DefaultProgress and
// reselection allowed.
func NewSliderState() *SliderState {
	return &SliderState{
		progress:         DefaultProgress,
		averagePercent:   DefaultProgress,
		AllowReselection: true,
	}
}

// Progress returns the handle position in [0, 1].
func (s *SliderState) Progress() float64 { return s.progress }

// SetProgress stores v clamped to [0, 1] and reports whether the stored value
// changed.
func (s *SliderState) SetProgress(v float64) bool {
	v = clamp01(v)
	changed := v != s.progress
	s.progress = v
	return changed
}

// AveragePercent returns the average indicator position in [0, 1].
func (s *SliderState) AveragePercent() float64 { return s.averagePercent }

// SetAveragePercent stores v clamped to [0, 1] and reports whether the stored
// value changed.
func (s *SliderState) SetAveragePercent(v float64) bool {
	v = clamp01(v)
	changed := v != s.averagePercent
	s.averagePercent = v
	return changed
}

// CommittedValue returns the progress recorded by the last commit.
func (s *SliderState) CommittedValue() float64 { return s.committedValue }

// commit records the current progress and disables touch. It reports false
// when reselection is allowed, in which case nothing changes.
func (s *SliderState) commit() bool {
	if s.AllowReselection {
		return false
	}
	s.committedValue = s.progress
	s.TouchDisabled = true
	return true
}

// reset re-enables touch after a commit.
func (s *SliderState) reset() {
	s.TouchDisabled = false
	s.ThumbSelected = false
}
