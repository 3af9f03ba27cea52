package lang

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "EN", expected: "en"},
		{input: " en-us ", expected: "en-US"},
		{input: "pt_br", expected: "pt-BR"},
		{input: "", wantErr: true},
		{input: "e", wantErr: true},
		{input: "en-US-x", wantErr: true},
		{input: "en-1", wantErr: true},
	}

	for _, tc := range cases {
		got, err := Normalize(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if got := OrDefault("???"); got != Default {
		t.Fatalf("expected fallback %q, got %q", Default, got)
	}
	if got := OrDefault("fr"); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
}
