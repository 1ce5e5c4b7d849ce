package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/svgdom"
	"github.com/Drominaman/svgmap/tooltip"
)

const sessionSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">
  <rect id="north" x="10" y="10" width="100" height="60"/>
  <rect x="130" y="10" width="100" height="60" style="stroke:green"/>
  <circle cx="60" cy="150" r="40"/>
</svg>`

func newTestSession(t *testing.T, trigger tooltip.Trigger) (*Session, *annotation.MemStore) {
	t.Helper()
	doc, err := svgdom.ParseString(sessionSVG)
	require.NoError(t, err)
	store := annotation.NewMemStore()
	store.Set("north", annotation.Record{Title: "North", Link: "https://example.com/north"})
	store.Set("map-region-0", annotation.Record{Description: "East"})
	settings := tooltip.DefaultSettings()
	settings.Trigger = trigger
	s := NewSession(doc, store, settings)
	s.Bind()
	return s, store
}

func fill(t *testing.T, s *Session, id string) string {
	t.Helper()
	n := s.Document().RegionByID(id)
	require.NotNil(t, n)
	v, _ := svgdom.StyleProperty(n, "fill")
	return v
}

func stroke(t *testing.T, s *Session, id string) (string, string) {
	t.Helper()
	n := s.Document().RegionByID(id)
	require.NotNil(t, n)
	sv, _ := svgdom.StyleProperty(n, "stroke")
	wv, _ := svgdom.StyleProperty(n, "stroke-width")
	return sv, wv
}

func TestBindStylesOnlyRegionsWithData(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)

	assert.Equal(t, "#fbbf24", fill(t, s, "north"))
	assert.Equal(t, "#fbbf24", fill(t, s, "map-region-0"))
	// no record: stays inert
	assert.Equal(t, "", fill(t, s, "map-region-1"))
}

func TestBindIdempotent(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)
	first := s.Bind()
	second := s.Bind()
	assert.Equal(t, first, second)
}

func TestBindPicksUpNewRecords(t *testing.T) {
	s, store := newTestSession(t, tooltip.TriggerHover)
	assert.Equal(t, "", fill(t, s, "map-region-1"))
	store.Set("map-region-1", annotation.Record{Title: "West"})
	s.Bind()
	assert.Equal(t, "#fbbf24", fill(t, s, "map-region-1"))
}

func TestHoverTransitions(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)

	s.PointerEnter("north")
	assert.Equal(t, "#e1a50a", fill(t, s, "north"))
	s.PointerLeave("north")
	assert.Equal(t, "#fbbf24", fill(t, s, "north"))

	// pointer events on an unbound region change nothing
	s.PointerEnter("map-region-1")
	assert.Equal(t, "", fill(t, s, "map-region-1"))
}

func TestClickModeSelection(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerClick)
	var notified []string
	s.OnSelect = func(id string) { notified = append(notified, id) }

	res := s.Click("north")
	assert.Equal(t, ActionShowTooltip, res.Action)
	assert.Equal(t, "north", s.Selected())
	sv, wv := stroke(t, s, "north")
	assert.Equal(t, "#2563eb", sv)
	assert.Equal(t, "2", wv)

	// selecting another region reverts the first
	s.Click("map-region-0")
	assert.Equal(t, "map-region-0", s.Selected())
	sv, _ = stroke(t, s, "north")
	assert.Equal(t, "", sv)

	s.ClickBackground()
	assert.Equal(t, "", s.Selected())
	sv, _ = stroke(t, s, "map-region-0")
	assert.Equal(t, "", sv)

	assert.Equal(t, []string{"north", "map-region-0", ""}, notified)
}

func TestSelectionRestoresCapturedStroke(t *testing.T) {
	s, store := newTestSession(t, tooltip.TriggerClick)
	store.Set("map-region-0", annotation.Record{Title: "East"})
	s.Bind()

	s.Click("map-region-0")
	sv, _ := stroke(t, s, "map-region-0")
	assert.Equal(t, "#2563eb", sv)

	s.ClickBackground()
	// the original style-attribute stroke comes back
	sv, _ = stroke(t, s, "map-region-0")
	assert.Equal(t, "green", sv)
}

func TestClickHoverModeOpensLink(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)

	res := s.Click("north")
	assert.Equal(t, ActionOpenLink, res.Action)
	assert.Equal(t, "https://example.com/north", res.Link)
	assert.Equal(t, "", s.Selected())

	// no link means no action in hover mode
	res = s.Click("map-region-0")
	assert.Equal(t, ActionNone, res.Action)
}

func TestTooltipSuppression(t *testing.T) {
	s, store := newTestSession(t, tooltip.TriggerClick)
	store.Set("map-region-1", annotation.Record{Link: "https://example.com"})
	s.Bind()

	// link-only record: region selects but shows no tooltip
	res := s.Click("map-region-1")
	assert.Equal(t, ActionNone, res.Action)
	assert.Equal(t, "map-region-1", s.Selected())
	_, eligible := s.TooltipFor("map-region-1")
	assert.False(t, eligible)

	rec, eligible := s.TooltipFor("north")
	assert.True(t, eligible)
	assert.Equal(t, "North", rec.Title)

	_, eligible = s.TooltipFor("no-such-region")
	assert.False(t, eligible)
}

func TestApplySettingsRestyles(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)

	ns := s.Settings()
	ns.RegionColor = "#ff0000"
	require.NoError(t, s.ApplySettings(ns))
	assert.Equal(t, "#ff0000", fill(t, s, "north"))

	ns.Trigger = "bogus"
	assert.Error(t, s.ApplySettings(ns))
}

func TestRegionBounds(t *testing.T) {
	s, _ := newTestSession(t, tooltip.TriggerHover)
	b, err := s.RegionBounds("north")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, b.X, 0.05)
	assert.InDelta(t, 100.0, b.W, 0.05)

	_, err = s.RegionBounds("no-such-region")
	assert.ErrorIs(t, err, ErrRegionNotFound)
}
