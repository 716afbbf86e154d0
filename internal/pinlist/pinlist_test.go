package pinlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseDSL(t *testing.T) {
	text := `# op-amp pinout
component "LM358"
package soic

pin 1 OUT1 left output
pin 2 IN1- left input 1
pin 3 IN1+ left input 2
pin 4 GND left power_in 3
pin 5 IN2+ right input 3
pin 6 IN2- right input 2
pin 7 OUT2 right output 1
pin 8 VCC right power_in
`
	doc, err := ParseDSL("test", text)
	if err != nil {
		t.Fatalf("ParseDSL() error: %v", err)
	}
	if doc.ComponentName != "LM358" {
		t.Errorf("component = %q, want LM358", doc.ComponentName)
	}
	if doc.PackageType != "soic" {
		t.Errorf("package = %q, want soic", doc.PackageType)
	}
	if len(doc.Pins) != 8 {
		t.Fatalf("pin count = %d, want 8", len(doc.Pins))
	}

	p := doc.Pins[1]
	if p.Number != "2" || p.Name != "IN1-" || p.Side != pinout.SideLeft ||
		p.Type != "input" || p.Position != 1 {
		t.Errorf("pin 2 = %+v", p)
	}
	// Type without position, position defaulting to 0.
	if doc.Pins[7].Type != "power_in" || doc.Pins[7].Position != 0 {
		t.Errorf("pin 8 = %+v", doc.Pins[7])
	}
}

func TestParseDSLMinimal(t *testing.T) {
	doc, err := ParseDSL("test", "pin 1 VCC\npin 2 GND")
	if err != nil {
		t.Fatalf("ParseDSL() error: %v", err)
	}
	if len(doc.Pins) != 2 {
		t.Fatalf("pin count = %d, want 2", len(doc.Pins))
	}
	if doc.Pins[0].Side != "" {
		t.Errorf("undeclared side = %q, want empty", doc.Pins[0].Side)
	}
}

func TestParseDSLGridDesignators(t *testing.T) {
	doc, err := ParseDSL("test", "pin A1 VDD\npin B2 GND\n")
	if err != nil {
		t.Fatalf("ParseDSL() error: %v", err)
	}
	if doc.Pins[0].Number != "A1" || doc.Pins[1].Number != "B2" {
		t.Errorf("pins = %+v", doc.Pins)
	}
}

func TestParseDSLBadLine(t *testing.T) {
	if _, err := ParseDSL("test", "pin\n"); err == nil {
		t.Errorf("ParseDSL() expected error for pin without number")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "mcu.json", `{
  "component_name": "ATtiny85",
  "package": "dip",
  "pins": [
    {"number": "1", "name": "RESET", "type": "input"},
    {"number": "2", "name": "PB3", "type": "bidirectional"},
    {"number": "3", "name": "PB4"},
    {"number": "4", "name": "GND", "type": "power_in"},
    {"number": "5", "name": "PB0", "side": "right", "position": 2},
    {"number": "6", "name": "PB1"},
    {"number": "7", "name": "PB2"},
    {"number": "8", "name": "VCC", "type": "power_in"}
  ]
}`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.ComponentName != "ATtiny85" || doc.PackageType != "dip" {
		t.Errorf("header = %q/%q", doc.ComponentName, doc.PackageType)
	}
	if len(doc.Pins) != 8 {
		t.Fatalf("pin count = %d, want 8", len(doc.Pins))
	}
	// normalize fills unknown types with unspecified.
	if doc.Pins[2].Type != pinout.TypeUnspecified {
		t.Errorf("pin 3 type = %q, want unspecified", doc.Pins[2].Type)
	}
	if doc.Pins[4].Side != pinout.SideRight || doc.Pins[4].Position != 2 {
		t.Errorf("pin 5 placement = %+v", doc.Pins[4])
	}
}

func TestLoadJSONEmptyPins(t *testing.T) {
	path := writeTemp(t, "empty.json", `{"component_name": "X", "pins": []}`)
	if _, err := Load(path); err == nil {
		t.Errorf("Load() expected error for empty pin list")
	}
}

func TestLoadJSONMalformed(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"component_name": `)
	if _, err := Load(path); err == nil {
		t.Errorf("Load() expected error for malformed JSON")
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := "LM358"
	f.SetSheetName("Sheet1", sheet)
	rows := [][]interface{}{
		{"Number", "Name", "Side", "Type", "Position"},
		{"1", "OUT1", "left", "output", "0"},
		{"2", "IN1-", "left", "input", "1"},
		{"", "", "", "", ""}, // blank row, skipped
		{"3", "IN1+", "LEFT", "Input", "2"},
		{"4", "GND", "", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "pins.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.ComponentName != "LM358" {
		t.Errorf("component = %q, want sheet name LM358", doc.ComponentName)
	}
	if len(doc.Pins) != 4 {
		t.Fatalf("pin count = %d, want 4 (blank row skipped)", len(doc.Pins))
	}
	// Header casing and cell casing both normalize.
	if doc.Pins[2].Side != pinout.SideLeft || doc.Pins[2].Type != pinout.TypeInput {
		t.Errorf("pin 3 = %+v", doc.Pins[2])
	}
	if doc.Pins[3].Side != "" || doc.Pins[3].Type != pinout.TypeUnspecified {
		t.Errorf("pin 4 = %+v", doc.Pins[3])
	}
}

func TestLoadXLSXMissingColumns(t *testing.T) {
	f := excelize.NewFile()
	row := []interface{}{"Number", "Description"}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	row2 := []interface{}{"1", "something"}
	if err := f.SetSheetRow("Sheet1", "A2", &row2); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() expected error for missing Name column")
	}
}

func TestLoadDefaultsComponentName(t *testing.T) {
	path := writeTemp(t, "anon.txt", "pin 1 A\npin 2 B\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.ComponentName != "Unknown_IC" {
		t.Errorf("component = %q, want Unknown_IC", doc.ComponentName)
	}
}
