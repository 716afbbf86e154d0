package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLibGen/internal/pinlist"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/topology"
)

var pinsCmd = &cobra.Command{
	Use:   "pins <pinlist>",
	Short: "Show the parsed pin table for a pin list file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
}

func runPins(cmd *cobra.Command, args []string) error {
	doc, err := pinlist.Load(args[0])
	if err != nil {
		return err
	}

	title := lipgloss.NewStyle().Bold(true)
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title.Render(doc.ComponentName))
	if doc.PackageType != "" {
		fmt.Fprintln(out, dim.Render("package: "+doc.PackageType))
	}
	fmt.Fprintln(out, header.Render(fmt.Sprintf("%-8s %-16s %-8s %-4s %s",
		"PIN", "NAME", "SIDE", "POS", "TYPE")))
	for _, p := range doc.Pins {
		side := p.Side
		if side == "" {
			side = pinout.SideLeft
		}
		fmt.Fprintf(out, "%-8s %-16s %-8s %-4d %s\n",
			p.Number, p.Name, side, p.Position, p.Type)
	}

	if doc.PackageType != "" {
		fam := topology.FamilyOf(pinout.PackageType(doc.PackageType))
		fmt.Fprintln(out, dim.Render(fmt.Sprintf("%d pins, %s topology", len(doc.Pins), fam)))
	} else {
		fmt.Fprintln(out, dim.Render(fmt.Sprintf("%d pins", len(doc.Pins))))
	}
	return nil
}
