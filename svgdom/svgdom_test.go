package svgdom

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func parseFile(t *testing.T, path string) *Document {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return doc
}

func TestParseViewBox(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	vb := doc.ViewBox()
	if vb.X != 0 || vb.Y != 0 || vb.W != 400 || vb.H != 300 {
		t.Errorf("got viewBox %+v, want 0 0 400 300", vb)
	}
}

func TestParseNoSVGRoot(t *testing.T) {
	raw, err := os.ReadFile("testdata/not-svg.html")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseString(string(raw)); err != ErrNoSVGRoot {
		t.Errorf("got %v, want ErrNoSVGRoot", err)
	}
}

func TestViewBoxFallback(t *testing.T) {
	doc, err := ParseString(`<svg width="120px" height="80"><rect/></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	vb := doc.ViewBox()
	if vb.W != 120 || vb.H != 80 {
		t.Errorf("got fallback viewBox %+v, want 120x80", vb)
	}
}

func TestIndexRegions(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	got := doc.IndexRegions()
	want := []string{
		"north",
		"map-region-0", "map-region-1", "map-region-2",
		"map-region-3", "map-region-4", "map-region-5",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestIndexIdempotence(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	first := doc.IndexRegions()
	second := doc.IndexRegions()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-indexing changed identifiers:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestIndexUniqueAssignments(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	seen := map[string]bool{}
	for _, id := range doc.IndexRegions() {
		if seen[id] {
			t.Errorf("identifier %q assigned twice", id)
		}
		seen[id] = true
	}
}

func TestIndexKeepsDuplicateSourceIDs(t *testing.T) {
	doc := parseFile(t, "testdata/duplicate-ids.svg")
	got := doc.IndexRegions()
	want := []string{"twin", "twin", "map-region-0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// lookup resolves to the first carrier
	n := doc.RegionByID("twin")
	if n == nil {
		t.Fatal("twin not found")
	}
	if x, _ := Attr(n, "x"); x != "0" {
		t.Errorf("got element with x=%s, want the first twin (x=0)", x)
	}
}

func TestRegionByID(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	doc.IndexRegions()
	if doc.RegionByID("north") == nil {
		t.Error("pre-existing id not found")
	}
	if doc.RegionByID("map-region-3") == nil {
		t.Error("assigned id not found")
	}
	if doc.RegionByID("") != nil {
		t.Error("empty id must resolve to nothing")
	}
	if doc.RegionByID("no-such-region") != nil {
		t.Error("unknown id must resolve to nothing")
	}
}

func TestRegionByIDAwkwardCharacters(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	doc.IndexRegions()
	n := doc.RegionByID("north")
	for _, id := range []string{`we"st`, "south:east", `back\slash`, "1st", "per.iod"} {
		SetAttr(n, "id", id)
		if doc.RegionByID(id) == nil {
			t.Errorf("identifier %q did not resolve", id)
		}
	}
}

func TestSerializeCarriesAssignments(t *testing.T) {
	doc := parseFile(t, "testdata/map.svg")
	doc.IndexRegions()
	out, err := doc.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"north", "map-region-0", "map-region-5"} {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("serialized output lost id %q", id)
		}
	}
	if !strings.Contains(out, "viewBox=") {
		t.Error("serialized output lost the viewBox attribute")
	}
}

func TestEscapeSelector(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain-id_9", "plain-id_9"},
		{"1st", `\31 st`},
		{"-", `\-`},
		{"a b", `a\ b`},
		{`quo"te`, `quo\"te`},
		{"semi;colon", `semi\;colon`},
		{"back`tick", "back\\`tick"},
		{`back\slash`, `back\\slash`},
		{"café", "café"},
	}
	for _, c := range cases {
		if got := EscapeSelector(c.in); got != c.want {
			t.Errorf("EscapeSelector(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := SelectorForID("1st"); got != `#\31 st` {
		t.Errorf("SelectorForID(1st) = %q", got)
	}
}

func TestStyleProperty(t *testing.T) {
	doc, err := ParseString(`<svg viewBox="0 0 10 10"><rect id="r" fill="#aaa" style="stroke:red; stroke-width:3"/></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	n := doc.RegionByID("r")

	if v, ok := StyleProperty(n, "stroke"); !ok || v != "red" {
		t.Errorf("stroke = %q, %v", v, ok)
	}
	// presentation attribute fallback
	if v, ok := StyleProperty(n, "fill"); !ok || v != "#aaa" {
		t.Errorf("fill = %q, %v", v, ok)
	}
	if _, ok := StyleProperty(n, "opacity"); ok {
		t.Error("opacity should be absent")
	}

	SetStyleProperty(n, "stroke", "blue")
	if v, _ := StyleProperty(n, "stroke"); v != "blue" {
		t.Errorf("after set, stroke = %q", v)
	}
	SetStyleProperty(n, "fill", "#00ff00")
	if v, _ := StyleProperty(n, "fill"); v != "#00ff00" {
		t.Errorf("after set, fill = %q", v)
	}
	if v, _ := StyleProperty(n, "stroke-width"); v != "3" {
		t.Errorf("sibling declaration lost, stroke-width = %q", v)
	}

	RemoveStyleProperty(n, "stroke")
	if v, ok := StyleProperty(n, "stroke"); ok {
		t.Errorf("stroke still present after removal: %q", v)
	}
	if v, _ := StyleProperty(n, "stroke-width"); v != "3" {
		t.Errorf("removal dropped sibling declaration, stroke-width = %q", v)
	}
}
