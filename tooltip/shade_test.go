package tooltip

import "testing"

func TestShade(t *testing.T) {
	cases := []struct {
		in      string
		percent int
		want    string
	}{
		// 2.55*10 = 25.5 rounds away from zero to 26
		{"#FBBF24", -10, "#e1a50a"},
		{"#fbbf24", 0, "#fbbf24"},
		{"#abc", 0, "#aabbcc"},
		{"#000000", -10, "#000000"}, // clamp low
		{"#ffffff", 10, "#ffffff"},  // clamp high
		{"#1f2937", 10, "#394351"},
	}
	for _, c := range cases {
		got, err := Shade(c.in, c.percent)
		if err != nil {
			t.Errorf("Shade(%q, %d): %v", c.in, c.percent, err)
			continue
		}
		if got != c.want {
			t.Errorf("Shade(%q, %d) = %q, want %q", c.in, c.percent, got, c.want)
		}
	}
}

func TestShadeErrors(t *testing.T) {
	for _, in := range []string{"", "#ab", "#abcd", "not-a-color", "#zzzzzz"} {
		if _, err := Shade(in, -10); err == nil {
			t.Errorf("Shade(%q): expected an error", in)
		}
	}
}

func TestRegionHoverColorDerived(t *testing.T) {
	s := DefaultSettings()
	if got := s.RegionHoverColor(); got != "#e1a50a" {
		t.Errorf("got %q", got)
	}
	// changing the base color must change the derived color with it
	s.RegionColor = "#ffffff"
	if got := s.RegionHoverColor(); got != "#e5e5e5" {
		t.Errorf("got %q", got)
	}
	// unparseable base falls back to itself instead of failing
	s.RegionColor = "teal"
	if got := s.RegionHoverColor(); got != "teal" {
		t.Errorf("got %q", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1f2937")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x1f || c.G != 0x29 || c.B != 0x37 || c.A != 0xff {
		t.Errorf("got %+v", c)
	}
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
	s.Trigger = "dblclick"
	if err := s.Validate(); err == nil {
		t.Error("expected an error for a bad trigger")
	}
	s = DefaultSettings()
	s.TitleFontSize = 0
	if err := s.Validate(); err == nil {
		t.Error("expected an error for a zero font size")
	}
}
