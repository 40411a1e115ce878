package hypgen

import (
	"encoding/json"
)

// SourceMap tracks position mappings between .hyp source and generated .go
// files. All line numbers are 0-indexed.
type SourceMap struct {
	// SourceFile is the original .hyp file path
	SourceFile string `json:"sourceFile"`

	// Mappings contains position mappings from .go to .hyp
	Mappings []SourceMapping `json:"mappings"`
}

// SourceMapping represents a single line/column mapping.
type SourceMapping struct {
	// GoLine is the line in the generated .go file (0-indexed)
	GoLine int `json:"goLine"`
	// GoCol is the column in the generated .go file (0-indexed)
	GoCol int `json:"goCol"`
	// HypLine is the line in the source .hyp file (0-indexed)
	HypLine int `json:"hypLine"`
	// HypCol is the column in the source .hyp file (0-indexed)
	HypCol int `json:"hypCol"`
	// Length is the length of the mapped region
	Length int `json:"length"`
}

// NewSourceMap creates a new empty source map.
func NewSourceMap(sourceFile string) *SourceMap {
	return &SourceMap{
		SourceFile: sourceFile,
		Mappings:   make([]SourceMapping, 0),
	}
}

// AddMapping adds a new position mapping.
func (sm *SourceMap) AddMapping(m SourceMapping) {
	sm.Mappings = append(sm.Mappings, m)
}

// GoToHyp converts a .go position to a .hyp position. Returns the translated
// position and true if found, otherwise returns the input position and false.
func (sm *SourceMap) GoToHyp(goLine, goCol int) (hypLine, hypCol int, found bool) {
	for _, m := range sm.Mappings {
		if m.GoLine == goLine && goCol >= m.GoCol && goCol <= m.GoCol+m.Length {
			offset := goCol - m.GoCol
			return m.HypLine, m.HypCol + offset, true
		}
	}
	return goLine, goCol, false
}

// HypToGo converts a .hyp position to a .go position. Returns the translated
// position and true if found.
func (sm *SourceMap) HypToGo(hypLine, hypCol int) (goLine, goCol int, found bool) {
	for _, m := range sm.Mappings {
		if m.HypLine == hypLine && hypCol >= m.HypCol && hypCol <= m.HypCol+m.Length {
			offset := hypCol - m.HypCol
			return m.GoLine, m.GoCol + offset, true
		}
	}
	return hypLine, hypCol, false
}

// ToJSON serializes the source map to JSON.
func (sm *SourceMap) ToJSON() ([]byte, error) {
	return json.MarshalIndent(sm, "", "  ")
}

// ParseSourceMap parses a source map from JSON.
func ParseSourceMap(data []byte) (*SourceMap, error) {
	var sm SourceMap
	if err := json.Unmarshal(data, &sm); err != nil {
		return nil, err
	}
	return &sm, nil
}

// SourceMapFileName returns the source map filename for a given generated
// file, e.g. "page_hyp.go" -> "page_hyp.go.map".
func SourceMapFileName(goFile string) string {
	return goFile + ".map"
}
