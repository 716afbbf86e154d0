// Package config holds per-package geometry defaults. Built-in values
// can be overridden by a user TOML file and, on top of that, by
// command-line flags.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

//go:embed defaults.toml
var defaultsTOML []byte

// PackageDefaults mirrors pinout.PackageSpec field for field. Zero
// values mean "not set" so user files only need the fields they change.
type PackageDefaults struct {
	Pitch            float64 `toml:"pitch"`
	PadWidth         float64 `toml:"pad_width"`
	PadHeight        float64 `toml:"pad_height"`
	RowSpacing       float64 `toml:"row_spacing"`
	BodyWidth        float64 `toml:"body_width"`
	BodyHeight       float64 `toml:"body_height"`
	PadShape         string  `toml:"pad_shape"`
	PadType          string  `toml:"pad_type"`
	Drill            float64 `toml:"drill"`
	ThermalPad       bool    `toml:"thermal_pad"`
	ThermalPadWidth  float64 `toml:"thermal_pad_width"`
	ThermalPadHeight float64 `toml:"thermal_pad_height"`
}

type Config struct {
	Packages map[string]PackageDefaults `toml:"packages"`
}

// Default returns the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	if err := toml.Unmarshal(defaultsTOML, cfg); err != nil {
		panic(fmt.Sprintf("config: bad embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a user config file and merges it over the built-in
// defaults. Fields the file sets win; everything else keeps the
// built-in value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	user := &Config{}
	if err := toml.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg := Default()
	for name, u := range user.Packages {
		cfg.Packages[name] = merge(cfg.Packages[name], u)
	}
	return cfg, nil
}

func merge(base, over PackageDefaults) PackageDefaults {
	if over.Pitch != 0 {
		base.Pitch = over.Pitch
	}
	if over.PadWidth != 0 {
		base.PadWidth = over.PadWidth
	}
	if over.PadHeight != 0 {
		base.PadHeight = over.PadHeight
	}
	if over.RowSpacing != 0 {
		base.RowSpacing = over.RowSpacing
	}
	if over.BodyWidth != 0 {
		base.BodyWidth = over.BodyWidth
	}
	if over.BodyHeight != 0 {
		base.BodyHeight = over.BodyHeight
	}
	if over.PadShape != "" {
		base.PadShape = over.PadShape
	}
	if over.PadType != "" {
		base.PadType = over.PadType
	}
	if over.Drill != 0 {
		base.Drill = over.Drill
	}
	if over.ThermalPad {
		base.ThermalPad = true
	}
	if over.ThermalPadWidth != 0 {
		base.ThermalPadWidth = over.ThermalPadWidth
	}
	if over.ThermalPadHeight != 0 {
		base.ThermalPadHeight = over.ThermalPadHeight
	}
	return base
}

// Spec builds a PackageSpec for the given package type from the
// configured defaults. Unknown types fall back to "other".
func (c *Config) Spec(pkg pinout.PackageType) pinout.PackageSpec {
	d, ok := c.Packages[string(pkg)]
	if !ok {
		d = c.Packages[string(pinout.PkgOther)]
	}
	return pinout.PackageSpec{
		PackageType:      pkg,
		PinPitch:         d.Pitch,
		PadWidth:         d.PadWidth,
		PadHeight:        d.PadHeight,
		RowSpacing:       d.RowSpacing,
		BodyWidth:        d.BodyWidth,
		BodyHeight:       d.BodyHeight,
		PadShape:         pinout.PadShape(d.PadShape),
		PadType:          pinout.PadType(d.PadType),
		DrillSize:        d.Drill,
		ThermalPad:       d.ThermalPad,
		ThermalPadWidth:  d.ThermalPadWidth,
		ThermalPadHeight: d.ThermalPadHeight,
	}
}
