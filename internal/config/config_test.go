package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

func TestDefaultCoversEveryPackageType(t *testing.T) {
	cfg := Default()
	types := []pinout.PackageType{
		pinout.PkgDIP, pinout.PkgSOIC, pinout.PkgSSOP, pinout.PkgSOP,
		pinout.PkgTSSOP, pinout.PkgSOT, pinout.PkgDFN, pinout.PkgQFP,
		pinout.PkgTQFP, pinout.PkgLQFP, pinout.PkgQFN, pinout.PkgBGA,
		pinout.PkgOther,
	}
	for _, pt := range types {
		t.Run(string(pt), func(t *testing.T) {
			spec := cfg.Spec(pt)
			if spec.PackageType != pt {
				t.Errorf("spec type = %s, want %s", spec.PackageType, pt)
			}
			if err := spec.Validate(); err != nil {
				t.Errorf("default spec invalid: %v", err)
			}
		})
	}
}

func TestDefaultDIPIsThruHole(t *testing.T) {
	spec := Default().Spec(pinout.PkgDIP)
	if spec.PadType != pinout.PadThruHole || spec.DrillSize <= 0 {
		t.Errorf("DIP defaults = %s drill %g, want thru_hole with a drill", spec.PadType, spec.DrillSize)
	}
}

func TestDefaultQFNHasThermalPad(t *testing.T) {
	spec := Default().Spec(pinout.PkgQFN)
	if !spec.ThermalPad || spec.ThermalPadWidth <= 0 {
		t.Errorf("QFN defaults lack a thermal pad: %+v", spec)
	}
}

func TestUnknownTypeFallsBack(t *testing.T) {
	spec := Default().Spec("weird")
	if spec.PinPitch <= 0 {
		t.Errorf("fallback spec unusable: %+v", spec)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[packages.soic]
pitch = 0.635
pad_width = 0.35

[packages.mychip]
pitch = 2.0
pad_width = 1.0
pad_height = 1.0
row_spacing = 6.0
body_width = 5.0
body_height = 5.0
pad_shape = "rect"
pad_type = "smd"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	soic := cfg.Spec(pinout.PkgSOIC)
	if soic.PinPitch != 0.635 || soic.PadWidth != 0.35 {
		t.Errorf("overridden fields = %g/%g, want 0.635/0.35", soic.PinPitch, soic.PadWidth)
	}
	// Untouched fields keep the built-in values.
	base := Default().Spec(pinout.PkgSOIC)
	if soic.PadHeight != base.PadHeight || soic.RowSpacing != base.RowSpacing {
		t.Errorf("unset fields changed: %+v", soic)
	}

	// Entirely new package sections work too.
	my := cfg.Spec("mychip")
	if my.PinPitch != 2.0 || my.PadShape != pinout.ShapeRect {
		t.Errorf("custom package = %+v", my)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[packages.soic\npitch="), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() expected error for malformed TOML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("Load() expected error for missing file")
	}
}
