package emojislider

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringID names one of the animated quantities owned by a SpringModel.
type SpringID uint8

const (
	SpringThumb   SpringID = iota // handle scale: squeezes on press
	SpringAverage                 // average indicator scale: grows on commit
	SpringAvatar                  // avatar scale: pops in next to the handle on commit
	springCount
)

func (id SpringID) String() string {
	switch id {
	case SpringThumb:
		return "thumb"
	case SpringAverage:
		return "average"
	case SpringAvatar:
		return "avatar"
	default:
		return fmt.Sprintf("spring(%d)", uint8(id))
	}
}

const (
	// solverStep is the fixed integration step in seconds.
	solverStep = 0.001
	// maxTickDelta caps a single Tick so a stalled frame does not explode.
	maxTickDelta = 0.064
	// DefaultRestThreshold is the speed and displacement below which a spring
	// is considered settled.
	DefaultRestThreshold = 0.005
)

// ErrInvalidSpring is returned when a spring is configured with a
// non-positive tension or friction.
var ErrInvalidSpring = errors.New("invalid spring config")

// SpringConfig holds Origami-scale spring constants. Tension is stiffness,
// Friction is damping.
type SpringConfig struct {
	Tension           float64 `yaml:"tension"`
	Friction          float64 `yaml:"friction"`
	OvershootClamping bool    `yaml:"overshoot_clamping"`
}

// Default spring constants.
var (
	DefaultThumbSpring   = SpringConfig{Tension: 3.0, Friction: 5.0, OvershootClamping: true}
	DefaultAverageSpring = SpringConfig{Tension: 40.0, Friction: 7.0}
	DefaultAvatarSpring  = SpringConfig{Tension: 40.0, Friction: 7.0}
)

// Validate reports a configuration error for non-positive constants.
func (c SpringConfig) Validate() error {
	if !(c.Tension > 0) {
		return fmt.Errorf("%w: tension %v must be > 0", ErrInvalidSpring, c.Tension)
	}
	if !(c.Friction > 0) {
		return fmt.Errorf("%w: friction %v must be > 0", ErrInvalidSpring, c.Friction)
	}
	return nil
}

// physical converts Origami tension/friction to stiffness and damping
// coefficients for a unit mass.
func (c SpringConfig) physical() (stiffness, damping float64) {
	return (c.Tension-30)*3.62 + 194, (c.Friction-8)*3 + 25
}

// harmonicaParams returns the angular frequency and damping ratio harmonica
// expects.
func (c SpringConfig) harmonicaParams() (angularFrequency, dampingRatio float64) {
	k, d := c.physical()
	angularFrequency = math.Sqrt(k)
	return angularFrequency, d / (2 * angularFrequency)
}

// SpringListener observes spring updates. Implementations must be comparable
// (typically pointers) so registration can be deduplicated.
type SpringListener interface {
	// SpringUpdated is called after a tick changed the spring's current value.
	SpringUpdated(id SpringID, value float64)
	// SpringAtRest is called once when a spring settles on its target.
	SpringAtRest(id SpringID)
}

type springState struct {
	cfg      SpringConfig
	motion   harmonica.Spring
	used     bool
	current  float64
	target   float64
	velocity float64
	start    float64 // current value when the target last changed
	resting  bool
}

// overshooting reports whether the spring crossed its target since the
// target last changed.
func (s *springState) overshooting() bool {
	return (s.start < s.target && s.current > s.target) ||
		(s.start > s.target && s.current < s.target)
}

// SpringModel integrates a fixed set of damped oscillators. It has no clock
// of its own; the owner calls Tick once per frame with the elapsed time.
type SpringModel struct {
	springs   [springCount]springState
	listeners []SpringListener
	accum     float64
	lastSteps int

	// RestThreshold is used by AtRest and Tick to decide when a spring has
	// settled. Defaults to DefaultRestThreshold.
	RestThreshold float64
}

// NewSpringModel creates springs for every entry in cfgs. Every spring starts
// at rest at 0.
func NewSpringModel(cfgs map[SpringID]SpringConfig) (*SpringModel, error) {
	m := &SpringModel{RestThreshold: DefaultRestThreshold}
	for id, cfg := range cfgs {
		if id >= springCount {
			return nil, fmt.Errorf("emojislider: unknown spring %v", id)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("emojislider: %v spring: %w", id, err)
		}
		freq, ratio := cfg.harmonicaParams()
		m.springs[id] = springState{
			cfg:     cfg,
			motion:  harmonica.NewSpring(solverStep, freq, ratio),
			used:    true,
			resting: true,
		}
	}
	return m, nil
}

func (m *SpringModel) spring(id SpringID) *springState {
	if id >= springCount || !m.springs[id].used {
		panic(fmt.Sprintf("emojislider: spring %v is not configured", id))
	}
	return &m.springs[id]
}

// Has reports whether the model owns a spring with the given id.
func (m *SpringModel) Has(id SpringID) bool {
	return id < springCount && m.springs[id].used
}

// Config returns the constants the spring was created with.
func (m *SpringModel) Config(id SpringID) SpringConfig {
	return m.spring(id).cfg
}

// Current returns the spring's current value.
func (m *SpringModel) Current(id SpringID) float64 {
	return m.spring(id).current
}

// Target returns the value the spring is driving toward.
func (m *SpringModel) Target(id SpringID) float64 {
	return m.spring(id).target
}

// Velocity returns the spring's current velocity.
func (m *SpringModel) Velocity(id SpringID) float64 {
	return m.spring(id).velocity
}

// SetTarget changes the resting value. Current value and velocity are kept,
// so motion continues smoothly from wherever the spring is.
func (m *SpringModel) SetTarget(id SpringID, value float64) {
	s := m.spring(id)
	if s.target == value {
		return
	}
	s.target = value
	s.start = s.current
	s.resting = m.settled(s)
}

// SetCurrent snaps the spring to value and puts it at rest there.
func (m *SpringModel) SetCurrent(id SpringID, value float64) {
	s := m.spring(id)
	s.current = value
	s.target = value
	s.start = value
	s.velocity = 0
	s.resting = true
}

// IsAtRest reports whether both speed and distance to target are within eps.
func (m *SpringModel) IsAtRest(id SpringID, eps float64) bool {
	s := m.spring(id)
	return math.Abs(s.velocity) <= eps && math.Abs(s.current-s.target) <= eps
}

// AtRest is IsAtRest with the model's RestThreshold.
func (m *SpringModel) AtRest(id SpringID) bool {
	return m.IsAtRest(id, m.RestThreshold)
}

// Idle reports whether every configured spring is at rest. A driver should
// stop requesting ticks while Idle is true.
func (m *SpringModel) Idle() bool {
	for i := range m.springs {
		if m.springs[i].used && !m.springs[i].resting {
			return false
		}
	}
	return true
}

func (m *SpringModel) settled(s *springState) bool {
	return math.Abs(s.velocity) <= m.RestThreshold && math.Abs(s.current-s.target) <= m.RestThreshold
}

// Tick advances every moving spring by dt seconds using fixed solver steps.
// Leftover time shorter than a step is carried into the next call.
func (m *SpringModel) Tick(dt float64) {
	m.lastSteps = 0
	if m.Idle() {
		m.accum = 0
		return
	}
	if !(dt > 0) {
		return
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	m.accum += dt
	steps := 0
	// The tolerance keeps 1/60 s frames from losing a step to rounding.
	for m.accum >= solverStep-1e-9 {
		m.accum -= solverStep
		steps++
	}
	if m.accum < 0 {
		m.accum = 0
	}
	m.lastSteps = steps

	for i := range m.springs {
		s := &m.springs[i]
		if !s.used || s.resting {
			continue
		}
		before := s.current
		for n := 0; n < steps && !s.resting; n++ {
			s.current, s.velocity = s.motion.Update(s.current, s.velocity, s.target)
			if m.settled(s) || (s.cfg.OvershootClamping && s.overshooting()) {
				s.current = s.target
				s.start = s.target
				s.velocity = 0
				s.resting = true
			}
		}
		id := SpringID(i)
		if s.current != before {
			for _, l := range m.listeners {
				l.SpringUpdated(id, s.current)
			}
		}
		if s.resting {
			for _, l := range m.listeners {
				l.SpringAtRest(id)
			}
		}
	}
}

// AddListener registers l. Registering the same listener twice is a no-op.
func (m *SpringModel) AddListener(l SpringListener) {
	if l == nil {
		return
	}
	for _, existing := range m.listeners {
		if existing == l {
			return
		}
	}
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters l. Removing an unknown listener is a no-op.
func (m *SpringModel) RemoveListener(l SpringListener) {
	for i, existing := range m.listeners {
		if existing == l {
			copy(m.listeners[i:], m.listeners[i+1:])
			m.listeners[len(m.listeners)-1] = nil
			m.listeners = m.listeners[:len(m.listeners)-1]
			return
		}
	}
}

// NumListeners returns how many listeners are registered.
func (m *SpringModel) NumListeners() int {
	return len(m.listeners)
}
