package tooltip

import (
	"github.com/Drominaman/svgmap/svgpath"
)

// Placement offsets, in CSS pixels. The exported script carries the
// same constants; the two implementations must agree exactly.
const (
	hoverGap = 15 // pointer to tooltip corner
	clickGap = 10 // region edge to tooltip edge
	edgePad  = 10 // minimum clearance from the container sides
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Size is a measured tooltip content box. The tooltip is rendered
// hidden first to obtain real dimensions, then placed and revealed.
type Size struct {
	W, H float64
}

// Rect is an on-screen rectangle in container-relative coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Placement is a computed top-left corner, container-relative.
type Placement struct {
	Left, Top float64
}

// PlaceHover anchors the tooltip below-right of the pointer, flipping
// to the opposite side of an axis when it would overflow the viewport
// on that axis. A single flip per axis; an oversized tooltip may still
// overflow the other way, which is accepted.
func PlaceHover(pointer Point, tip, viewport Size, containerOrigin Point) Placement {
	left := pointer.X + hoverGap
	if left+tip.W > viewport.W {
		left = pointer.X - tip.W - hoverGap
	}
	top := pointer.Y + hoverGap
	if top+tip.H > viewport.H {
		top = pointer.Y - tip.H - hoverGap
	}
	return Placement{Left: left - containerOrigin.X, Top: top - containerOrigin.Y}
}

// PlaceClick positions the tooltip above the region, centered on it,
// falling back below when the top would leave the container, then
// clamps horizontally to keep an edgePad margin inside the container.
// Returns ok=false when the viewBox declares no usable scale; the
// caller must suppress display rather than position arbitrarily.
func PlaceClick(region svgpath.Bounds, svgRect Rect, viewBox svgpath.Bounds, tip Size, containerWidth float64) (Placement, bool) {
	if viewBox.W <= 0 || viewBox.H <= 0 {
		return Placement{}, false
	}
	scaleX := svgRect.Width / viewBox.W
	scaleY := svgRect.Height / viewBox.H

	centerX := svgRect.Left + (region.X+region.W/2-viewBox.X)*scaleX
	topY := svgRect.Top + (region.Y-viewBox.Y)*scaleY
	bottomY := svgRect.Top + (region.Y+region.H-viewBox.Y)*scaleY

	top := topY - tip.H - clickGap
	if top < 0 {
		top = bottomY + clickGap
	}

	left := centerX - tip.W/2
	if left < 0 {
		left = edgePad
	}
	if left+tip.W > containerWidth {
		left = containerWidth - tip.W - edgePad
	}
	return Placement{Left: left, Top: top}, true
}
