package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLibGen/internal/config"
	"github.com/OpenTraceLab/OpenTraceLibGen/internal/pinlist"
	"github.com/OpenTraceLab/OpenTraceLibGen/internal/review"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/kicad/gen"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/footprint"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/symbol"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/topology"
)

var genFlags struct {
	pkg         string
	name        string
	outDir      string
	pitch       float64
	padWidth    float64
	padHeight   float64
	rowSpacing  float64
	bodyWidth   float64
	bodyHeight  float64
	padShape    string
	padType     string
	drill       float64
	thermal     bool
	thermalSize float64
	reviewPins  bool
	noFootprint bool
	noSymbol    bool
}

var genCmd = &cobra.Command{
	Use:   "gen <pinlist>",
	Short: "Generate KiCad symbol and footprint files from a pin list",
	Long: `Generate reads a pin list (JSON, XLSX, or plain text), lays out a
schematic symbol and a PCB footprint for the selected package, and
writes <name>.kicad_sym and <name>.kicad_mod.

Package dimensions come from built-in defaults per package type,
overridable with --config and individual flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	f := genCmd.Flags()
	f.StringVarP(&genFlags.pkg, "package", "p", "", "package type (dip, soic, qfp, qfn, bga, ...)")
	f.StringVarP(&genFlags.name, "name", "n", "", "component name (default: from the pin list)")
	f.StringVarP(&genFlags.outDir, "output", "o", ".", "output directory")
	f.Float64Var(&genFlags.pitch, "pitch", 0, "pin pitch in mm")
	f.Float64Var(&genFlags.padWidth, "pad-width", 0, "pad width in mm")
	f.Float64Var(&genFlags.padHeight, "pad-height", 0, "pad height in mm")
	f.Float64Var(&genFlags.rowSpacing, "row-spacing", 0, "pad row center distance in mm")
	f.Float64Var(&genFlags.bodyWidth, "body-width", 0, "package body width in mm")
	f.Float64Var(&genFlags.bodyHeight, "body-height", 0, "package body height in mm")
	f.StringVar(&genFlags.padShape, "pad-shape", "", "pad shape (rect, oval, circle, roundrect)")
	f.StringVar(&genFlags.padType, "pad-type", "", "pad type (smd, thru_hole)")
	f.Float64Var(&genFlags.drill, "drill", 0, "drill diameter for thru_hole pads in mm")
	f.BoolVar(&genFlags.thermal, "thermal", false, "add an exposed thermal pad")
	f.Float64Var(&genFlags.thermalSize, "thermal-size", 0, "thermal pad edge length in mm")
	f.BoolVar(&genFlags.reviewPins, "review", false, "review and edit the pin table before generating")
	f.BoolVar(&genFlags.noFootprint, "no-footprint", false, "generate only the symbol")
	f.BoolVar(&genFlags.noSymbol, "no-symbol", false, "generate only the footprint")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	doc, err := pinlist.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded pin list", "file", args[0], "pins", len(doc.Pins))

	pkg := pinout.PackageType(doc.PackageType)
	if genFlags.pkg != "" {
		pkg = pinout.PackageType(genFlags.pkg)
	}
	if pkg == "" {
		pkg = pinout.PkgOther
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	spec := cfg.Spec(pkg)
	applyGenOverrides(cmd, &spec)

	name := doc.ComponentName
	if genFlags.name != "" {
		name = genFlags.name
	}
	name = pinout.SanitizeName(name)

	pins := doc.Pins
	if genFlags.reviewPins {
		edited, ok, err := review.Run(name, pins)
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("review cancelled, nothing written")
			return nil
		}
		pins = edited
	}

	plan, err := topology.Resolve(pins, spec)
	if err != nil {
		return err
	}
	logger.Debug("resolved topology", "family", plan.Family, "package", pkg)

	if err := os.MkdirAll(genFlags.outDir, 0o755); err != nil {
		return err
	}

	footprintName := ""
	if !genFlags.noFootprint {
		fplan, err := footprint.Layout(pins, spec, plan)
		if err != nil {
			return err
		}
		text, err := gen.Footprint(fplan, name)
		if err != nil {
			return err
		}
		path := filepath.Join(genFlags.outDir, name+".kicad_mod")
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return err
		}
		footprintName = name
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	}

	if !genFlags.noSymbol {
		splan := symbol.Layout(topology.ApplySides(pins, plan))
		text, err := gen.Symbol(splan, name, footprintName)
		if err != nil {
			return err
		}
		path := filepath.Join(genFlags.outDir, name+".kicad_sym")
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	}
	return nil
}

// applyGenOverrides copies explicitly set flags onto the spec. Only
// flags the user passed win over config values.
func applyGenOverrides(cmd *cobra.Command, spec *pinout.PackageSpec) {
	f := cmd.Flags()
	if f.Changed("pitch") {
		spec.PinPitch = genFlags.pitch
	}
	if f.Changed("pad-width") {
		spec.PadWidth = genFlags.padWidth
	}
	if f.Changed("pad-height") {
		spec.PadHeight = genFlags.padHeight
	}
	if f.Changed("row-spacing") {
		spec.RowSpacing = genFlags.rowSpacing
	}
	if f.Changed("body-width") {
		spec.BodyWidth = genFlags.bodyWidth
	}
	if f.Changed("body-height") {
		spec.BodyHeight = genFlags.bodyHeight
	}
	if f.Changed("pad-shape") {
		spec.PadShape = pinout.PadShape(genFlags.padShape)
	}
	if f.Changed("pad-type") {
		spec.PadType = pinout.PadType(genFlags.padType)
	}
	if f.Changed("drill") {
		spec.DrillSize = genFlags.drill
	}
	if f.Changed("thermal") {
		spec.ThermalPad = genFlags.thermal
	}
	if f.Changed("thermal-size") {
		spec.ThermalPad = true
		spec.ThermalPadWidth = genFlags.thermalSize
		spec.ThermalPadHeight = genFlags.thermalSize
	}
}
