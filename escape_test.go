package hyp

import "testing"

func TestEscapeString(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"plain":            {input: "hello", want: "hello"},
		"empty":            {input: "", want: ""},
		"ampersand":        {input: "a & b", want: "a &amp; b"},
		"angle brackets":   {input: "<script>", want: "&lt;script&gt;"},
		"quote passes":     {input: `say "hi"`, want: `say "hi"`},
		"mixed":            {input: "1 < 2 && 3 > 2", want: "1 &lt; 2 &amp;&amp; 3 &gt; 2"},
		"already entities": {input: "&amp;", want: "&amp;amp;"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := EscapeString(tt.input); got != tt.want {
				t.Errorf("EscapeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttrString(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"plain":          {input: "hello", want: "hello"},
		"quote escaped":  {input: `say "hi"`, want: "say &quot;hi&quot;"},
		"angle brackets": {input: "<b>", want: "&lt;b&gt;"},
		"ampersand":      {input: "a&b", want: "a&amp;b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := EscapeAttrString(tt.input); got != tt.want {
				t.Errorf("EscapeAttrString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
