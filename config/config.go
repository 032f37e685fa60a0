// Package config loads gallery settings from a TOML file and RADIAL_GALLERY_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. RADIAL_GALLERY_GALLERY_DIRECTION=rtl
const EnvPrefix = "RADIAL_GALLERY"

// ErrNoItems is returned when the configuration lists no items
var ErrNoItems = errors.New("no items configured")

// Config is the decoded configuration file
type Config struct {
	Gallery  GallerySection  `mapstructure:"gallery"`
	Motion   MotionSection   `mapstructure:"motion"`
	Audio    AudioSection    `mapstructure:"audio"`
	Terminal TerminalSection `mapstructure:"terminal"`
	Items    []ItemEntry     `mapstructure:"items"`

	// Keys maps action names to key lists, e.g. next = ["n", "PgDn", "g+n"]
	Keys map[string][]string `mapstructure:"keys"`
}

// GallerySection mirrors gallery.Options
type GallerySection struct {
	ScrollDistance    float64 `mapstructure:"scroll_distance"`
	VisiblePercentage float64 `mapstructure:"visible_percentage"`
	BaseRadius        float64 `mapstructure:"base_radius"`
	CompactRadius     float64 `mapstructure:"compact_radius"`
	Breakpoint        float64 `mapstructure:"breakpoint"`
	PinStart          string  `mapstructure:"pin_start"`
	Direction         string  `mapstructure:"direction"`
	Disabled          bool    `mapstructure:"disabled"`
	ReducedMotion     bool    `mapstructure:"reduced_motion"`
}

// MotionSection tunes item emphasis springs
type MotionSection struct {
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
}

// AudioSection controls snap and selection cues
type AudioSection struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// TerminalSection maps host pixels to cells
type TerminalSection struct {
	CellWidth  int  `mapstructure:"cell_width"`
	CellHeight int  `mapstructure:"cell_height"`
	Mouse      bool `mapstructure:"mouse"`
	Thumbnails bool `mapstructure:"thumbnails"`
}

// ItemEntry is one [[items]] table
type ItemEntry struct {
	Step  string `mapstructure:"step"`
	Title string `mapstructure:"title"`
	Image string `mapstructure:"image"`
}

// setDefaults registers every key so environment overrides apply without a file
func setDefaults(v *viper.Viper) {
	v.SetDefault("gallery.scroll_distance", parameter.DefaultScrollDistance)
	v.SetDefault("gallery.visible_percentage", parameter.DefaultVisiblePercentage)
	v.SetDefault("gallery.base_radius", parameter.DefaultBaseRadius)
	v.SetDefault("gallery.compact_radius", parameter.DefaultCompactRadius)
	v.SetDefault("gallery.breakpoint", parameter.DefaultBreakpoint)
	v.SetDefault("gallery.pin_start", parameter.DefaultPinStart)
	v.SetDefault("gallery.direction", layout.LTR.String())
	v.SetDefault("gallery.disabled", false)
	v.SetDefault("gallery.reduced_motion", false)

	v.SetDefault("motion.spring_frequency", parameter.SpringFrequency)
	v.SetDefault("motion.spring_damping", parameter.SpringDamping)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.DefaultMasterVolume)

	v.SetDefault("terminal.cell_width", parameter.DefaultCellWidth)
	v.SetDefault("terminal.cell_height", parameter.DefaultCellHeight)
	v.SetDefault("terminal.mouse", true)
	v.SetDefault("terminal.thumbnails", true)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Default returns the configuration with no file and no environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := decode(v)
	return cfg
}

// Load reads path, or only defaults and environment when path is empty
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return decode(v)
}

// Parse decodes TOML data with defaults and environment applied
func Parse(data []byte) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	return &cfg, nil
}
