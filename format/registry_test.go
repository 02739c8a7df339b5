package format

import "testing"

func TestGetFormatter_ExplicitName(t *testing.T) {
	cases := []struct {
		name string
		want Formatter
	}{
		{"json", formatters["json"]},
		{"csv", formatters["csv"]},
		{"text", formatters["text"]},
		{"bogus", formatters["text"]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetFormatter(tc.name, ""); got != tc.want {
				t.Errorf("GetFormatter(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestGetFormatter_ExtensionFallback(t *testing.T) {
	cases := []struct {
		filename string
		want     Formatter
	}{
		{"out.json", formatters["json"]},
		{"out.csv", formatters["csv"]},
		{"out.txt", formatters["text"]},
		{"out.unknown", formatters["text"]},
		{"", formatters["text"]},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			if got := GetFormatter("", tc.filename); got != tc.want {
				t.Errorf("GetFormatter(\"\", %q) = %v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}
