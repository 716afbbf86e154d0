// Package pinlist loads component pin tables from the formats the upstream
// collaborators produce: the extraction service's JSON, a line-oriented
// pinlist text format, and spreadsheet exports.
package pinlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// Document is a parsed pin table plus the metadata the file carried.
type Document struct {
	ComponentName string
	PackageType   string // optional package hint, e.g. "soic"; empty if absent
	Pins          []pinout.Pin
}

// Load reads a pin table, dispatching on the file extension: .json for the
// extraction JSON, .xlsx for spreadsheets, anything else for the pinlist
// text format.
func Load(path string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = LoadJSON(path)
	case ".xlsx":
		doc, err = LoadXLSX(path)
	default:
		doc, err = LoadDSL(path)
	}
	if err != nil {
		return nil, err
	}
	if len(doc.Pins) == 0 {
		return nil, fmt.Errorf("%s: no pins found", path)
	}
	normalize(doc)
	return doc, nil
}

// normalize fills fallback values the way the extraction pipeline does:
// unknown types become unspecified and unknown sides left. A pin with no
// declared side keeps the empty side so topology resolution can tell
// "placed by the caller" apart from "never placed"; positions stay as given
// (layout sorts are stable, so all-zero positions preserve file order).
func normalize(doc *Document) {
	for i := range doc.Pins {
		if doc.Pins[i].Side != "" {
			doc.Pins[i].Side = pinout.NormalizeSide(string(doc.Pins[i].Side))
		}
		doc.Pins[i].Type = pinout.NormalizeType(string(doc.Pins[i].Type))
	}
	if doc.ComponentName == "" {
		doc.ComponentName = "Unknown_IC"
	}
}
