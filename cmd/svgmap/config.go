package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/svgdom"
	"github.com/Drominaman/svgmap/tooltip"
)

// loadDocument reads and parses an SVG file. Anything not declared as
// SVG is rejected before parsing; a bad file must leave no state
// behind.
func loadDocument(path string) (*svgdom.Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return nil, fmt.Errorf("'%s' is not an SVG file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return svgdom.Parse(f)
}

// loadAnnotations fills the store from a JSON object mapping region
// identifiers to records.
func loadAnnotations(path string, store *annotation.MemStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var records map[string]annotation.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("parsing annotations JSON: %w", err)
	}
	for id, rec := range records {
		if err := annotation.ValidateID(id); err != nil {
			return fmt.Errorf("annotation key %q: %w", id, err)
		}
		store.Set(id, rec)
	}
	return nil
}

// loadSettings starts from the defaults, layers an optional JSON file
// on top, then environment variables on top of that.
func loadSettings(path string) (tooltip.Settings, error) {
	s := tooltip.DefaultSettings()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return s, err
		}
		if err := json.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("parsing settings JSON: %w", err)
		}
	}
	applyEnv(&s)
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func applyEnv(s *tooltip.Settings) {
	if v := os.Getenv("SVGMAP_TRIGGER"); v != "" {
		s.Trigger = tooltip.Trigger(v)
	}
	if v := os.Getenv("SVGMAP_REGION_COLOR"); v != "" {
		s.RegionColor = v
	}
	if v := os.Getenv("SVGMAP_BACKGROUND_COLOR"); v != "" {
		s.BackgroundColor = v
	}
	if v := os.Getenv("SVGMAP_TEXT_COLOR"); v != "" {
		s.TextColor = v
	}
	if v := os.Getenv("SVGMAP_TITLE_FONT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.TitleFontSize = n
		}
	}
	if v := os.Getenv("SVGMAP_DESCRIPTION_FONT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.DescriptionFontSize = n
		}
	}
}
