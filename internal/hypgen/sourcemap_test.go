package hypgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSourceMap_Lookup(t *testing.T) {
	sm := NewSourceMap("page.hyp")
	sm.AddMapping(SourceMapping{GoLine: 10, GoCol: 20, HypLine: 3, HypCol: 8, Length: 5})

	type tc struct {
		goLine, goCol     int
		wantLine, wantCol int
		wantFound         bool
	}

	tests := map[string]tc{
		"start of region":  {goLine: 10, goCol: 20, wantLine: 3, wantCol: 8, wantFound: true},
		"inside region":    {goLine: 10, goCol: 23, wantLine: 3, wantCol: 11, wantFound: true},
		"end of region":    {goLine: 10, goCol: 25, wantLine: 3, wantCol: 13, wantFound: true},
		"past region":      {goLine: 10, goCol: 26, wantLine: 10, wantCol: 26, wantFound: false},
		"different line":   {goLine: 11, goCol: 20, wantLine: 11, wantCol: 20, wantFound: false},
		"before region":    {goLine: 10, goCol: 19, wantLine: 10, wantCol: 19, wantFound: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			line, col, found := sm.GoToHyp(tt.goLine, tt.goCol)
			if line != tt.wantLine || col != tt.wantCol || found != tt.wantFound {
				t.Errorf("GoToHyp(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.goLine, tt.goCol, line, col, found, tt.wantLine, tt.wantCol, tt.wantFound)
			}
		})
	}

	line, col, found := sm.HypToGo(3, 10)
	if !found || line != 10 || col != 22 {
		t.Errorf("HypToGo(3, 10) = (%d, %d, %v), want (10, 22, true)", line, col, found)
	}
}

func TestSourceMap_JSONRoundTrip(t *testing.T) {
	sm := NewSourceMap("page.hyp")
	sm.AddMapping(SourceMapping{GoLine: 5, GoCol: 2, HypLine: 1, HypCol: 0, Length: 7})
	sm.AddMapping(SourceMapping{GoLine: 9, GoCol: 14, HypLine: 4, HypCol: 6, Length: 12})

	data, err := sm.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	parsed, err := ParseSourceMap(data)
	if err != nil {
		t.Fatalf("ParseSourceMap error: %v", err)
	}
	if diff := cmp.Diff(sm, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceMapFileName(t *testing.T) {
	if got := SourceMapFileName("page_hyp.go"); got != "page_hyp.go.map" {
		t.Errorf("SourceMapFileName = %q, want %q", got, "page_hyp.go.map")
	}
}

// Generated splices carry mappings back to their .hyp positions.
func TestGenerator_SourceMapRecordsSplices(t *testing.T) {
	input := `package views
maud T(name string) {
	div {
		(name)
	}
}
`
	l := NewLexer("test.hyp", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := NewAnalyzer(file).Analyze(); err != nil {
		t.Fatalf("analyze error: %v", err)
	}

	g := NewGenerator()
	g.SkipImports = true
	if _, err := g.Generate(file, "test.hyp"); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	sm := g.GetSourceMap()
	if len(sm.Mappings) == 0 {
		t.Fatal("no mappings recorded")
	}
	m := sm.Mappings[0]
	// (name) sits on line 4 column 3 of the input, 0-indexed 3/2; the
	// mapping points at the expression inside the parens.
	if m.HypLine != 3 {
		t.Errorf("HypLine = %d, want 3", m.HypLine)
	}
	if m.Length != len("name") {
		t.Errorf("Length = %d, want %d", m.Length, len("name"))
	}
}
