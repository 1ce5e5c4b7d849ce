package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/tooltip"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocumentRejectsNonSVG(t *testing.T) {
	path := writeFile(t, "map.txt", "<svg viewBox=\"0 0 10 10\"/>")
	if _, err := loadDocument(path); err == nil {
		t.Error("expected a rejection for a non-.svg file")
	}
}

func TestLoadDocument(t *testing.T) {
	path := writeFile(t, "map.svg", `<svg viewBox="0 0 10 10"><rect width="5" height="5"/></svg>`)
	doc, err := loadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if vb := doc.ViewBox(); vb.W != 10 {
		t.Errorf("got viewBox %+v", vb)
	}
}

func TestLoadAnnotations(t *testing.T) {
	path := writeFile(t, "a.json", `{"north": {"title": "North", "link": "https://example.com"}}`)
	store := annotation.NewMemStore()
	if err := loadAnnotations(path, store); err != nil {
		t.Fatal(err)
	}
	rec, ok := store.Get("north")
	if !ok || rec.Title != "North" {
		t.Errorf("got %+v, %v", rec, ok)
	}
}

func TestLoadAnnotationsRejectsBadKeys(t *testing.T) {
	path := writeFile(t, "a.json", `{"two words": {"title": "x"}}`)
	if err := loadAnnotations(path, annotation.NewMemStore()); err == nil {
		t.Error("expected an error for a whitespace key")
	}
}

func TestLoadSettingsLayering(t *testing.T) {
	path := writeFile(t, "s.json", `{"trigger": "click", "defaultRegionColor": "#112233"}`)
	t.Setenv("SVGMAP_REGION_COLOR", "#445566")

	s, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Trigger != tooltip.TriggerClick {
		t.Errorf("got trigger %q", s.Trigger)
	}
	// environment wins over the file
	if s.RegionColor != "#445566" {
		t.Errorf("got region color %q", s.RegionColor)
	}
	// untouched fields keep their defaults
	if s.TitleFontSize != 16 {
		t.Errorf("got title font size %d", s.TitleFontSize)
	}
}

func TestLoadSettingsValidates(t *testing.T) {
	t.Setenv("SVGMAP_TRIGGER", "dblclick")
	if _, err := loadSettings(""); err == nil {
		t.Error("expected a validation error")
	}
}
