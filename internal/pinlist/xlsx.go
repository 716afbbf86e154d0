package pinlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// LoadXLSX reads a pin table from the first sheet of a spreadsheet. The
// header row names the columns (case-insensitive): Number, Name, Side,
// Type, Position. Number and Name are required; the rest are optional.
func LoadXLSX(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: expected a header row and at least one pin row", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	numberCol, ok := cols["number"]
	if !ok {
		return nil, fmt.Errorf("%s: missing Number column", path)
	}
	nameCol, ok := cols["name"]
	if !ok {
		return nil, fmt.Errorf("%s: missing Name column", path)
	}

	cell := func(row []string, col int, present bool) string {
		if !present || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	// A renamed first sheet doubles as the component name.
	doc := &Document{}
	if sheets[0] != "Sheet1" {
		doc.ComponentName = sheets[0]
	}
	sideCol, hasSide := cols["side"]
	typeCol, hasType := cols["type"]
	posCol, hasPos := cols["position"]
	for n, row := range rows[1:] {
		number := cell(row, numberCol, true)
		if number == "" {
			continue // blank row
		}
		p := pinout.Pin{
			Number: number,
			Name:   cell(row, nameCol, true),
			Side:   pinout.Side(strings.ToLower(cell(row, sideCol, hasSide))),
			Type:   pinout.ElectricalType(strings.ToLower(cell(row, typeCol, hasType))),
		}
		if raw := cell(row, posCol, hasPos); raw != "" {
			pos, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad position %q", path, n+2, raw)
			}
			p.Position = pos
		}
		doc.Pins = append(doc.Pins, p)
	}
	return doc, nil
}
