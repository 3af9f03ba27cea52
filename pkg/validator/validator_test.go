package validator

import "testing"

type definition struct {
	ID    string `validate:"required,slug"`
	Label string `validate:"no_html"`
}

func TestValidateDefinitions(t *testing.T) {
	cases := []struct {
		name    string
		value   definition
		wantErr bool
	}{
		{name: "Valid", value: definition{ID: "option-1", Label: "LINKEDIN"}},
		{name: "Unicode label", value: definition{ID: "cafe", Label: "CAFÉ & BAR"}},
		{name: "Missing id", value: definition{Label: "HOME"}, wantErr: true},
		{name: "Uppercase id", value: definition{ID: "Home", Label: "HOME"}, wantErr: true},
		{name: "Markup label", value: definition{ID: "home", Label: "<b>HOME</b>"}, wantErr: true},
		{name: "Angle bracket label", value: definition{ID: "home", Label: "A > B"}},
		{name: "Heart label", value: definition{ID: "love", Label: "I <3 GO"}},
		{name: "Comparison label", value: definition{ID: "cmp", Label: "1 < 2 > 0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestContainsHTML(t *testing.T) {
	if ContainsHTML("plain text") {
		t.Errorf("plain text should not be reported as HTML")
	}
	if ContainsHTML("I <3 GO") || ContainsHTML("A > B") {
		t.Errorf("bare angle brackets should not be reported as HTML")
	}
	if !ContainsHTML("<script>alert(1)</script>") {
		t.Errorf("script tag should be reported as HTML")
	}
	if !ContainsHTML("HOME <img src=x>") {
		t.Errorf("img tag should be reported as HTML")
	}
}
