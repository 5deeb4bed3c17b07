package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got.Name)
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestNamesAndValid(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() len = %d, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Valid(n) {
			t.Errorf("Valid(%q) = false", n)
		}
	}
	if Valid("") || Valid("solarized") {
		t.Error("Valid accepted an unknown theme")
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q after SetActive(terminal)", Active.Name)
	}
}
