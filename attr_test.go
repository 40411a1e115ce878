package hyp

import "testing"

func renderAttrValue(v any) string {
	var out AttrBuffer
	RenderAttrTo(&out, v)
	return out.String()
}

func TestRenderAttrTo(t *testing.T) {
	type tc struct {
		value any
		want  string
	}

	tests := map[string]tc{
		"nil":            {value: nil, want: ""},
		"string escaped": {value: `say "hi"`, want: "say &quot;hi&quot;"},
		"bool":           {value: false, want: "false"},
		"int":            {value: 42, want: "42"},
		"float64":        {value: 2.5, want: "2.5"},
		"rendered":       {value: RenderedAttribute("a&amp;b"), want: "a&amp;b"},
		"displayed":      {value: Displayed{Value: 3}, want: "3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := renderAttrValue(tt.value); got != tt.want {
				t.Errorf("RenderAttrTo(%#v) wrote %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestAttrLazy(t *testing.T) {
	cls := AttrLazy(func(out *AttrBuffer) {
		out.WriteString("row")
		out.WriteEscaped(` "striped"`)
	})

	if got := cls.Render().String(); got != "row &quot;striped&quot;" {
		t.Errorf("Render() = %q", got)
	}
	if got := renderAttrValue(cls); got != "row &quot;striped&quot;" {
		t.Errorf("RenderAttrTo(lazy) = %q", got)
	}

	var nilLazy AttrLazy
	if got := renderAttrValue(nilLazy); got != "" {
		t.Errorf("nil AttrLazy wrote %q, want empty", got)
	}
}
