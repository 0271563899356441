// Package config loads tab bar settings from YAML and watches them for
// changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/odvcencio/furry-tabs/tabbar"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk bar configuration.
type Config struct {
	Alignment    string          `yaml:"alignment"`
	Animation    AnimationConfig `yaml:"animation"`
	Indicator    IndicatorConfig `yaml:"indicator"`
	Spacing      float64         `yaml:"spacing"`
	ContentMode  string          `yaml:"contentMode"`
	ContentInset InsetConfig     `yaml:"contentInset"`
	ScrollMode   string          `yaml:"scrollMode"`
	FadeEdges    int             `yaml:"fadeEdges"`
	Theme        string          `yaml:"theme"`
	Tabs         []TabConfig     `yaml:"tabs"`
	Accessories  AccessoryConfig `yaml:"accessories"`
}

// AnimationConfig selects progressive or snap updates.
type AnimationConfig struct {
	Style    string `yaml:"style"`
	Duration string `yaml:"duration"`
}

// IndicatorConfig configures indicator placement.
type IndicatorConfig struct {
	Progressive *bool  `yaml:"progressive"`
	Overscroll  string `yaml:"overscroll"`
}

// InsetConfig is a horizontal content inset in columns.
type InsetConfig struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// TabConfig is one initial tab.
type TabConfig struct {
	Title string `yaml:"title"`
	Badge string `yaml:"badge,omitempty"`
}

// AccessoryConfig holds the text of each accessory slot.
type AccessoryConfig struct {
	Leading        string `yaml:"leading,omitempty"`
	LeadingPinned  string `yaml:"leadingPinned,omitempty"`
	Trailing       string `yaml:"trailing,omitempty"`
	TrailingPinned string `yaml:"trailingPinned,omitempty"`
}

var (
	alignments = map[string]tabbar.AlignmentMode{
		"leading":           tabbar.AlignLeading,
		"center":            tabbar.AlignCenter,
		"centerDistributed": tabbar.AlignCenterDistributed,
		"trailing":          tabbar.AlignTrailing,
	}
	animationStyles = map[string]tabbar.AnimationStyle{
		"progressive": tabbar.AnimationProgressive,
		"snap":        tabbar.AnimationSnap,
	}
	overscrolls = map[string]tabbar.OverscrollBehavior{
		"compress": tabbar.OverscrollCompress,
		"none":     tabbar.OverscrollNone,
		"clamp":    tabbar.OverscrollClamp,
	}
	contentModes = map[string]tabbar.ContentMode{
		"intrinsic": tabbar.ContentIntrinsic,
		"fit":       tabbar.ContentFit,
	}
	scrollModes = map[string]tabbar.ScrollMode{
		"interactive": tabbar.ScrollInteractive,
		"none":        tabbar.ScrollNone,
	}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Alignment:   "center",
		Animation:   AnimationConfig{Style: "progressive", Duration: "250ms"},
		Indicator:   IndicatorConfig{Overscroll: "compress"},
		Spacing:     1,
		ContentMode: "intrinsic",
		ScrollMode:  "interactive",
		FadeEdges:   3,
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	var doc map[string]any
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	// An empty or comment-only document decodes to nothing; keep the defaults.
	if len(doc) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every enumerated field and numeric range.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, ok bool) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalidConfig, field, value))
		}
	}
	_, ok := alignments[c.Alignment]
	check("alignment", c.Alignment, ok)
	_, ok = animationStyles[c.Animation.Style]
	check("animation.style", c.Animation.Style, ok)
	_, ok = overscrolls[c.Indicator.Overscroll]
	check("indicator.overscroll", c.Indicator.Overscroll, ok)
	_, ok = contentModes[c.ContentMode]
	check("contentMode", c.ContentMode, ok)
	_, ok = scrollModes[c.ScrollMode]
	check("scrollMode", c.ScrollMode, ok)

	if c.Animation.Duration != "" {
		if d, err := time.ParseDuration(c.Animation.Duration); err != nil || d < 0 {
			check("animation.duration", c.Animation.Duration, false)
		}
	}
	if c.Spacing < 0 {
		errs = append(errs, fmt.Errorf("%w: spacing %v is negative", ErrInvalidConfig, c.Spacing))
	}
	if c.ContentInset.Left < 0 || c.ContentInset.Right < 0 {
		errs = append(errs, fmt.Errorf("%w: contentInset is negative", ErrInvalidConfig))
	}
	if c.FadeEdges < 0 {
		errs = append(errs, fmt.Errorf("%w: fadeEdges %d is negative", ErrInvalidConfig, c.FadeEdges))
	}
	for i, tab := range c.Tabs {
		if tab.Title == "" {
			errs = append(errs, fmt.Errorf("%w: tabs[%d] has no title", ErrInvalidConfig, i))
		}
	}
	return errors.Join(errs...)
}

// AnimationDuration returns the parsed duration, zero for the bar default.
func (c *Config) AnimationDuration() time.Duration {
	d, _ := time.ParseDuration(c.Animation.Duration)
	return d
}

// IndicatorStyle returns the indicator placement. Indicators are
// progressive unless disabled.
func (c *Config) IndicatorStyle() tabbar.IndicatorStyle {
	return tabbar.IndicatorStyle{
		Progressive: c.Indicator.Progressive == nil || *c.Indicator.Progressive,
		Overscroll:  overscrolls[c.Indicator.Overscroll],
	}
}

// BarOptions converts the layout settings into construction options.
func (c *Config) BarOptions() []tabbar.Option {
	return []tabbar.Option{
		tabbar.WithAlignment(alignments[c.Alignment]),
		tabbar.WithAnimationStyle(animationStyles[c.Animation.Style]),
		tabbar.WithInterButtonSpacing(c.Spacing),
		tabbar.WithContentMode(contentModes[c.ContentMode]),
		tabbar.WithContentInset(c.contentInset()),
		tabbar.WithScrollMode(scrollModes[c.ScrollMode]),
	}
}

// ApplyTo updates a live bar. Geometry changes replay the current position.
func (c *Config) ApplyTo(bar *tabbar.Bar) {
	bar.SetAnimationStyle(animationStyles[c.Animation.Style])
	bar.SetScrollMode(scrollModes[c.ScrollMode])
	bar.SetIndicatorStyle(c.IndicatorStyle())
	bar.SetAlignment(alignments[c.Alignment])
	bar.SetInterButtonSpacing(c.Spacing)
	bar.SetContentMode(contentModes[c.ContentMode])
	bar.SetContentInset(c.contentInset())
}

// Titles returns the configured tab titles.
func (c *Config) Titles() []string {
	titles := make([]string, len(c.Tabs))
	for i, tab := range c.Tabs {
		titles[i] = tab.Title
	}
	return titles
}

// AccessoryText returns the configured text of a slot.
func (c *Config) AccessoryText(loc tabbar.AccessoryLocation) string {
	switch loc {
	case tabbar.AccessoryLeading:
		return c.Accessories.Leading
	case tabbar.AccessoryLeadingPinned:
		return c.Accessories.LeadingPinned
	case tabbar.AccessoryTrailing:
		return c.Accessories.Trailing
	case tabbar.AccessoryTrailingPinned:
		return c.Accessories.TrailingPinned
	}
	return ""
}

func (c *Config) contentInset() tabbar.EdgeInsets {
	return tabbar.EdgeInsets{Left: c.ContentInset.Left, Right: c.ContentInset.Right}
}
