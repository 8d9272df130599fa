package emojislider

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete construction-time configuration of a Slider.
// Sizes are in pixels except EffectOffsetDp, which is converted with Density.
// Keep defaults in DefaultConfig so the rest of the package can assume a
// well-formed value.
type Config struct {
	// Emoji is the glyph drawn on the handle and launched on release.
	Emoji string `yaml:"emoji"`

	// Progress is the initial handle position. Values in (1, 100) are read
	// as percentages, negative values as 0, anything else above 1 falls back
	// to DefaultProgress.
	Progress float64 `yaml:"progress"`
	// AverageProgress is the initial average indicator position.
	AverageProgress float64 `yaml:"average_progress"`

	AllowReselection bool `yaml:"allow_reselection"`
	// ScrollAnywhere lets a press anywhere on the track grab the handle.
	ScrollAnywhere bool `yaml:"scroll_anywhere"`
	TouchDisabled  bool `yaml:"touch_disabled"`
	// ShowAverage draws the average indicator and the avatar.
	ShowAverage bool `yaml:"show_average"`

	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	HorizontalPadding float64 `yaml:"horizontal_padding"`
	// BarHeight is the height of the track's touch box.
	BarHeight float64 `yaml:"bar_height"`
	// TrackThickness is the height of the painted track line.
	TrackThickness    float64 `yaml:"track_thickness"`
	HandleSize        float64 `yaml:"handle_size"`
	AverageHandleSize float64 `yaml:"average_handle_size"`
	AvatarSize        float64 `yaml:"avatar_size"`

	// Density is the number of pixels per density-independent unit.
	Density float64 `yaml:"density"`
	// EffectOffsetDp is the vertical offset of the effect anchor below the
	// slider's top edge.
	EffectOffsetDp float64 `yaml:"effect_offset_dp"`

	PopupDuration   time.Duration   `yaml:"popup_duration"`
	FlyingDirection FlyingDirection `yaml:"flying_direction"`

	BarColor      Color `yaml:"bar_color"`
	BubbleColor   Color `yaml:"bubble_color"`
	TrackColor    Color `yaml:"track_color"`
	GradientStart Color `yaml:"gradient_start"`
	GradientEnd   Color `yaml:"gradient_end"`

	Springs SpringsConfig `yaml:"springs"`
}

// SpringsConfig groups the per-spring constants.
type SpringsConfig struct {
	Thumb   SpringConfig `yaml:"thumb"`
	Average SpringConfig `yaml:"average"`
	Avatar  SpringConfig `yaml:"avatar"`
}

// byID returns the constants keyed for NewSpringModel.
func (c SpringsConfig) byID() map[SpringID]SpringConfig {
	return map[SpringID]SpringConfig{
		SpringThumb:   c.Thumb,
		SpringAverage: c.Average,
		SpringAvatar:  c.Avatar,
	}
}

// DefaultConfig returns a config with every field set to its documented default.
func DefaultConfig() Config {
	return Config{
		Emoji:             "😍",
		Progress:          DefaultProgress,
		AverageProgress:   DefaultProgress,
		AllowReselection:  true,
		ScrollAnywhere:    true,
		ShowAverage:       true,
		Width:             320,
		Height:            56,
		HorizontalPadding: 24,
		BarHeight:         48,
		TrackThickness:    6,
		HandleSize:        48,
		AverageHandleSize: 22,
		AvatarSize:        30,
		Density:           1,
		EffectOffsetDp:    DefaultEffectOffsetDp,
		PopupDuration:     DefaultPopupDuration,
		FlyingDirection:   FlyingUp,
		BarColor:          Color{R: 0x61 / 255.0, G: 0x68 / 255.0, B: 0xe7 / 255.0, A: 1},
		BubbleColor:       ColorWhite,
		TrackColor:        Color{R: 0.9, G: 0.9, B: 0.9, A: 1},
		GradientStart:     Color{R: 0.70, G: 0.29, B: 1.0, A: 1},
		GradientEnd:       Color{R: 1.0, G: 0.29, B: 0.45, A: 1},
		Springs: SpringsConfig{
			Thumb:   DefaultThumbSpring,
			Average: DefaultAverageSpring,
			Avatar:  DefaultAvatarSpring,
		},
	}
}

// NormalizeProgress maps a configured progress value onto [0, 1].
func NormalizeProgress(v float64) float64 {
	switch {
	case v >= 0 && v <= 1:
		return v
	case v > 1 && v < 100:
		return v / 100
	case v < 0:
		return 0
	default:
		return DefaultProgress
	}
}

// Validate checks every field and normalizes the progress values in place.
func (c *Config) Validate() error {
	c.Progress = NormalizeProgress(c.Progress)
	c.AverageProgress = clamp01(c.AverageProgress)

	if c.Emoji == "" {
		return fmt.Errorf("%w: emoji must not be empty", ErrInvalidConfig)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: width and height must be >= 0", ErrInvalidConfig)
	}
	if c.HorizontalPadding < 0 {
		return fmt.Errorf("%w: horizontal_padding must be >= 0", ErrInvalidConfig)
	}
	if c.HandleSize < 0 || c.AverageHandleSize < 0 || c.AvatarSize < 0 {
		return fmt.Errorf("%w: handle sizes must be >= 0", ErrInvalidConfig)
	}
	if !(c.Density > 0) {
		return fmt.Errorf("%w: density must be > 0", ErrInvalidConfig)
	}
	if c.PopupDuration < 0 {
		return fmt.Errorf("%w: popup_duration must be >= 0", ErrInvalidConfig)
	}
	for id, sc := range c.Springs.byID() {
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("%w: springs.%v: %w", ErrInvalidConfig, id, err)
		}
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys and trailing documents are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err == nil {
		return Config{}, errors.New("decode config yaml: unexpected trailing document")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(b)
}

// UnmarshalYAML decodes a #rrggbb or #rrggbbaa string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as #rrggbbaa.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML decodes "up" or "down".
func (d *FlyingDirection) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "":
		*d = FlyingUp
	case "down":
		*d = FlyingDown
	default:
		return fmt.Errorf("invalid flying direction %q (must be up or down)", s)
	}
	return nil
}

// MarshalYAML encodes the direction as "up" or "down".
func (d FlyingDirection) MarshalYAML() (any, error) {
	return d.String(), nil
}
