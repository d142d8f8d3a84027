package briefing

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Plain Title", "plain title"},
		{"  Spaced\t\tOut \n Title ", "spaced out title"},
		{"<b>Bold</b> claim", "bold claim"},
		{"AT&amp;T expands 5G", "at&t expands 5g"},
		{"x  ", "x"},
	}
	for _, c := range cases {
		if got := NormalizeTitle(c.in); got != c.want {
			t.Fatalf("NormalizeTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Plain Title",
		"<i>Markup</i> &amp; entities   everywhere",
		"MIXED case  With\nNewlines",
	}
	for _, in := range inputs {
		once := NormalizeTitle(in)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Fatalf("NormalizeTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
