package pinlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// jsonDocument mirrors the JSON the vision-extraction collaborator returns.
type jsonDocument struct {
	ComponentName string    `json:"component_name"`
	Package       string    `json:"package,omitempty"`
	Pins          []jsonPin `json:"pins"`
}

type jsonPin struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Side     string `json:"side,omitempty"`
	Type     string `json:"type,omitempty"`
	Position int    `json:"position,omitempty"`
}

// LoadJSON reads an extraction-result JSON file.
func LoadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc := &Document{
		ComponentName: jd.ComponentName,
		PackageType:   jd.Package,
	}
	for _, p := range jd.Pins {
		doc.Pins = append(doc.Pins, pinout.Pin{
			Number:   p.Number,
			Name:     p.Name,
			Side:     pinout.Side(p.Side),
			Type:     pinout.ElectricalType(p.Type),
			Position: p.Position,
		})
	}
	return doc, nil
}
