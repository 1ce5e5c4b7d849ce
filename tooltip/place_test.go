package tooltip

import (
	"testing"

	"github.com/Drominaman/svgmap/svgpath"
)

func TestPlaceHover(t *testing.T) {
	viewport := Size{W: 800, H: 600}
	tip := Size{W: 200, H: 100}
	var origin Point

	// plenty of room: below-right of the pointer
	p := PlaceHover(Point{X: 100, Y: 100}, tip, viewport, origin)
	if p.Left != 115 || p.Top != 115 {
		t.Errorf("got %+v, want 115,115", p)
	}

	// pointer near the right edge: horizontal flip
	p = PlaceHover(Point{X: 750, Y: 100}, tip, viewport, origin)
	if p.Left != 535 {
		t.Errorf("got left %v, want 535", p.Left)
	}
	if p.Top != 115 {
		t.Errorf("got top %v, want 115", p.Top)
	}

	// pointer near the bottom edge: vertical flip
	p = PlaceHover(Point{X: 100, Y: 580}, tip, viewport, origin)
	if p.Top != 580-100-15 {
		t.Errorf("got top %v, want %v", p.Top, 580-100-15)
	}

	// container offset shifts the result into container space
	p = PlaceHover(Point{X: 100, Y: 100}, tip, viewport, Point{X: 20, Y: 30})
	if p.Left != 95 || p.Top != 85 {
		t.Errorf("got %+v, want 95,85", p)
	}
}

func TestPlaceHoverSingleFlipOnly(t *testing.T) {
	// a tooltip wider than the viewport flips once and is then allowed
	// to overflow the left edge
	p := PlaceHover(Point{X: 750, Y: 10}, Size{W: 900, H: 50}, Size{W: 800, H: 600}, Point{})
	if p.Left != 750-900-15 {
		t.Errorf("got left %v, want %v", p.Left, 750-900-15)
	}
}

func TestPlaceClick(t *testing.T) {
	viewBox := svgpath.Bounds{X: 0, Y: 0, W: 400, H: 300}
	svgRect := Rect{Left: 0, Top: 0, Width: 400, Height: 300} // scale 1
	tip := Size{W: 100, H: 40}

	// region well inside: centered above
	region := svgpath.Bounds{X: 150, Y: 100, W: 100, H: 50}
	p, ok := PlaceClick(region, svgRect, viewBox, tip, 400)
	if !ok {
		t.Fatal("placement unavailable")
	}
	if p.Left != 150 { // center 200 - 50
		t.Errorf("got left %v, want 150", p.Left)
	}
	if p.Top != 100-40-10 {
		t.Errorf("got top %v, want 50", p.Top)
	}

	// region at the top: falls back below
	region = svgpath.Bounds{X: 150, Y: 5, W: 100, H: 50}
	p, _ = PlaceClick(region, svgRect, viewBox, tip, 400)
	if p.Top != 5+50+10 {
		t.Errorf("got top %v, want 65", p.Top)
	}
}

func TestPlaceClickClamp(t *testing.T) {
	viewBox := svgpath.Bounds{W: 400, H: 300}
	svgRect := Rect{Width: 400, Height: 300}
	tip := Size{W: 100, H: 40}

	// natural left would be 45-50 = -5: pinned to the edge margin
	region := svgpath.Bounds{X: 20, Y: 100, W: 50, H: 50}
	p, _ := PlaceClick(region, svgRect, viewBox, tip, 400)
	if p.Left != 10 {
		t.Errorf("got left %v, want 10", p.Left)
	}

	// right edge would overflow: pinned 10px inside the right edge
	region = svgpath.Bounds{X: 330, Y: 100, W: 50, H: 50}
	p, _ = PlaceClick(region, svgRect, viewBox, tip, 400)
	if p.Left != 400-100-10 {
		t.Errorf("got left %v, want 290", p.Left)
	}
}

func TestPlaceClickScalesAndOffsets(t *testing.T) {
	// viewBox with a min offset, svg drawn at half size and indented
	viewBox := svgpath.Bounds{X: 100, Y: 50, W: 400, H: 300}
	svgRect := Rect{Left: 30, Top: 20, Width: 200, Height: 150}
	tip := Size{W: 40, H: 20}

	region := svgpath.Bounds{X: 300, Y: 200, W: 100, H: 50}
	p, ok := PlaceClick(region, svgRect, viewBox, tip, 500)
	if !ok {
		t.Fatal("placement unavailable")
	}
	// center-x: 30 + (350-100)*0.5 = 155; left = 155 - 20
	if p.Left != 135 {
		t.Errorf("got left %v, want 135", p.Left)
	}
	// top-y: 20 + (200-50)*0.5 = 95; top = 95 - 20 - 10
	if p.Top != 65 {
		t.Errorf("got top %v, want 65", p.Top)
	}
}

func TestPlaceClickDegenerateViewBox(t *testing.T) {
	region := svgpath.Bounds{X: 0, Y: 0, W: 10, H: 10}
	for _, vb := range []svgpath.Bounds{
		{},
		{W: 400},          // no height
		{W: -10, H: 300},  // negative width
	} {
		if _, ok := PlaceClick(region, Rect{Width: 400, Height: 300}, vb, Size{W: 10, H: 10}, 400); ok {
			t.Errorf("viewBox %+v: placement must be unavailable", vb)
		}
	}
}
