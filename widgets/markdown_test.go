package widgets

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	cases := []struct {
		in   string
		want []Span
	}{
		{"", nil},
		{"Logs", []Span{{Text: "Logs"}}},
		{"**Build** log", []Span{{Text: "Build", Bold: true}, {Text: " log"}}},
		{"_draft_ `v2`", []Span{{Text: "draft", Italic: true}, {Text: " "}, {Text: "v2", Code: true}}},
		{"snake_case_name", []Span{{Text: "snake_case_name"}}},
	}
	for _, tc := range cases {
		if got := ParseInline(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseInline(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText(ParseInline("**a** _b_ `c`")); got != "a b c" {
		t.Fatalf("plain = %q, want %q", got, "a b c")
	}
}
