// Package editor drives one editing session: per-region interaction
// state, selection, styling side effects on the live document, and
// atomic identifier renames across DOM, store and selection.
package editor

import (
	"log"

	"golang.org/x/net/html"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/svgdom"
	"github.com/Drominaman/svgmap/svgpath"
	"github.com/Drominaman/svgmap/tooltip"
)

// per-region styling states, mutually exclusive
type state uint8

const (
	stateIdle state = iota
	stateHovered
	stateSelected
)

// highlight stroke for the selected region
const (
	selectedStrokeColor = "#2563eb"
	selectedStrokeWidth = "2"
)

// ClickAction is what the host should do after a click event.
type ClickAction uint8

const (
	ActionNone ClickAction = iota
	// ActionShowTooltip: render the tooltip for the clicked region.
	ActionShowTooltip
	// ActionOpenLink: open Link in a new browsing context.
	ActionOpenLink
)

// ClickResult reports the outcome of a region click.
type ClickResult struct {
	Action ClickAction
	Link   string
}

// originalStroke is captured once per region and restored on deselect.
type originalStroke struct {
	stroke, width       string
	hasStroke, hasWidth bool
}

// Session owns the interaction state for one loaded document. All
// methods run on the caller's event loop; the session is not
// goroutine-safe and does not need to be.
type Session struct {
	doc      *svgdom.Document
	store    annotation.Store
	settings tooltip.Settings

	selected string
	states   map[string]state
	strokes  map[string]originalStroke
	bound    map[string]bool

	// OnSelect is invoked with the selected region identifier, or ""
	// when the selection is cleared.
	OnSelect func(id string)
}

// NewSession wraps a parsed document and its annotation store.
// Loading a new document means discarding the session and creating a
// fresh one; region state never survives a document swap.
func NewSession(doc *svgdom.Document, store annotation.Store, settings tooltip.Settings) *Session {
	return &Session{
		doc:      doc,
		store:    store,
		settings: settings,
		states:   map[string]state{},
		strokes:  map[string]originalStroke{},
		bound:    map[string]bool{},
	}
}

func (s *Session) Document() *svgdom.Document  { return s.doc }
func (s *Session) Settings() tooltip.Settings  { return s.settings }
func (s *Session) Selected() string            { return s.selected }

// Bind indexes the document and attaches interaction state to every
// region the store holds a record for. Regions without data stay
// visually and interactively inert. Binding is idempotent: re-binding
// an unchanged document attaches nothing twice.
func (s *Session) Bind() []string {
	ids := s.doc.IndexRegions()
	for _, id := range ids {
		if s.bound[id] {
			continue
		}
		if _, ok := s.store.Get(id); !ok {
			continue
		}
		n := s.doc.RegionByID(id)
		if n == nil {
			continue
		}
		s.captureStroke(id, n)
		svgdom.SetStyleProperty(n, "fill", s.settings.RegionColor)
		svgdom.SetStyleProperty(n, "cursor", "pointer")
		s.states[id] = stateIdle
		s.bound[id] = true
	}
	return ids
}

// ApplySettings replaces the session settings and restyles bound
// regions with the new base fill. The hover color needs no update
// here: it is derived from RegionColor on every read.
func (s *Session) ApplySettings(ns tooltip.Settings) error {
	if err := ns.Validate(); err != nil {
		return err
	}
	s.settings = ns
	for id := range s.bound {
		n := s.doc.RegionByID(id)
		if n == nil {
			continue
		}
		if s.states[id] == stateHovered {
			svgdom.SetStyleProperty(n, "fill", ns.RegionHoverColor())
		} else {
			svgdom.SetStyleProperty(n, "fill", ns.RegionColor)
		}
	}
	return nil
}

// PointerEnter applies the hover fill and moves an idle region to
// hovered. Unbound regions ignore pointer events entirely.
func (s *Session) PointerEnter(id string) {
	if !s.bound[id] {
		return
	}
	if n := s.doc.RegionByID(id); n != nil {
		svgdom.SetStyleProperty(n, "fill", s.settings.RegionHoverColor())
	}
	if s.states[id] == stateIdle {
		s.states[id] = stateHovered
	}
}

// PointerLeave restores the base fill and moves a hovered region back
// to idle. Selection (stroke highlight) is unaffected.
func (s *Session) PointerLeave(id string) {
	if !s.bound[id] {
		return
	}
	if n := s.doc.RegionByID(id); n != nil {
		svgdom.SetStyleProperty(n, "fill", s.settings.RegionColor)
	}
	if s.states[id] == stateHovered {
		s.states[id] = stateIdle
	}
}

// Click handles a pointer click on a region. In click mode the region
// becomes selected and the host is told whether tooltip content
// exists; in hover mode a click only follows the record's link, when
// there is one.
func (s *Session) Click(id string) ClickResult {
	if !s.bound[id] {
		return ClickResult{}
	}
	rec, ok := s.store.Get(id)
	if !ok {
		return ClickResult{}
	}
	if s.settings.Trigger == tooltip.TriggerHover {
		if rec.Link != "" {
			return ClickResult{Action: ActionOpenLink, Link: rec.Link}
		}
		return ClickResult{}
	}
	s.selectRegion(id)
	if rec.HasTooltipContent() {
		return ClickResult{Action: ActionShowTooltip}
	}
	return ClickResult{}
}

// ClickBackground clears the selection; clicking the SVG background or
// the tooltip close control are the same transition.
func (s *Session) ClickBackground() {
	s.clearSelection()
}

// TooltipFor returns the record for id, and whether a tooltip may be
// shown for it. Records with only a link never display. Showing an
// ineligible tooltip is a no-op, not an error.
func (s *Session) TooltipFor(id string) (annotation.Record, bool) {
	rec, ok := s.store.Get(id)
	if !ok {
		return annotation.Record{}, false
	}
	return rec, rec.HasTooltipContent()
}

// RegionBounds computes the region's user-space bounding box, for
// click-mode placement and label rendering.
func (s *Session) RegionBounds(id string) (svgpath.Bounds, error) {
	n := s.doc.RegionByID(id)
	if n == nil {
		return svgpath.Bounds{}, ErrRegionNotFound
	}
	return svgpath.NodeBounds(n)
}

func (s *Session) selectRegion(id string) {
	if s.selected == id {
		return
	}
	s.clearSelectionStyling()
	s.selected = id
	s.states[id] = stateSelected
	if n := s.doc.RegionByID(id); n != nil {
		svgdom.SetStyleProperty(n, "stroke", selectedStrokeColor)
		svgdom.SetStyleProperty(n, "stroke-width", selectedStrokeWidth)
	}
	s.notify(id)
}

func (s *Session) clearSelection() {
	if s.selected == "" {
		return
	}
	s.clearSelectionStyling()
	s.notify("")
}

// clearSelectionStyling restores the previously selected region to its
// captured stroke and idle state.
func (s *Session) clearSelectionStyling() {
	prev := s.selected
	if prev == "" {
		return
	}
	s.selected = ""
	s.states[prev] = stateIdle
	n := s.doc.RegionByID(prev)
	if n == nil {
		log.Printf("editor: selected region %q vanished from the document", prev)
		return
	}
	orig := s.strokes[prev]
	if orig.hasStroke {
		svgdom.SetStyleProperty(n, "stroke", orig.stroke)
	} else {
		svgdom.RemoveStyleProperty(n, "stroke")
	}
	if orig.hasWidth {
		svgdom.SetStyleProperty(n, "stroke-width", orig.width)
	} else {
		svgdom.RemoveStyleProperty(n, "stroke-width")
	}
}

func (s *Session) captureStroke(id string, n *html.Node) {
	if _, done := s.strokes[id]; done {
		return
	}
	var orig originalStroke
	orig.stroke, orig.hasStroke = svgdom.StyleProperty(n, "stroke")
	orig.width, orig.hasWidth = svgdom.StyleProperty(n, "stroke-width")
	s.strokes[id] = orig
}

func (s *Session) notify(id string) {
	if s.OnSelect != nil {
		s.OnSelect(id)
	}
}
