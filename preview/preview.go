// Package preview renders a raster snapshot of the bound regions, for
// a quick visual check of indexing and styling without opening the
// export in a browser.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/svgdom"
	"github.com/Drominaman/svgmap/svgpath"
	"github.com/Drominaman/svgmap/tooltip"
)

// ErrNoViewport reports a document whose viewBox gives no usable
// raster dimensions.
var ErrNoViewport = errors.New("preview: document has no usable viewBox")

// longest raster side; larger viewBoxes are scaled down
const maxSide = 2048

// userToDevice maps user-space path coordinates onto raster pixels.
type userToDevice struct {
	dst            rasterx.Adder
	sx, sy, tx, ty float64
}

func (u userToDevice) pt(p fixed.Point26_6) fixed.Point26_6 {
	x := float64(p.X)/64*u.sx + u.tx
	y := float64(p.Y)/64*u.sy + u.ty
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}

func (u userToDevice) Start(a fixed.Point26_6) { u.dst.Start(u.pt(a)) }
func (u userToDevice) Line(b fixed.Point26_6)  { u.dst.Line(u.pt(b)) }
func (u userToDevice) QuadBezier(b, c fixed.Point26_6) {
	u.dst.QuadBezier(u.pt(b), u.pt(c))
}
func (u userToDevice) CubeBezier(b, c, d fixed.Point26_6) {
	u.dst.CubeBezier(u.pt(b), u.pt(c), u.pt(d))
}
func (u userToDevice) Stop(closeLoop bool) { u.dst.Stop(closeLoop) }

// Render fills every region the store knows about with the settings'
// region color, the hovered one with the derived hover color. A region
// whose geometry cannot be compiled is logged and skipped; one bad
// shape never blanks the whole preview.
func Render(doc *svgdom.Document, store annotation.Store, settings tooltip.Settings, hovered string) (*image.RGBA, error) {
	vb := doc.ViewBox()
	if vb.W <= 0 || vb.H <= 0 {
		return nil, ErrNoViewport
	}
	scale := 1.0
	if longest := math.Max(vb.W, vb.H); longest > maxSide {
		scale = maxSide / longest
	}
	w := int(math.Ceil(vb.W * scale))
	h := int(math.Ceil(vb.H * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	if bg, err := tooltip.ParseHex(settings.BackgroundColor); err == nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	baseFill, err := tooltip.ParseHex(settings.RegionColor)
	if err != nil {
		return nil, fmt.Errorf("preview: region color: %w", err)
	}
	hoverFill := baseFill
	if c, err := tooltip.ParseHex(settings.RegionHoverColor()); err == nil {
		hoverFill = c
	}

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	device := userToDevice{
		dst: filler,
		sx:  scale, sy: scale,
		tx: -vb.X * scale, ty: -vb.Y * scale,
	}

	for _, id := range store.Keys() {
		node := doc.RegionByID(id)
		if node == nil {
			continue
		}
		p, err := svgpath.FromNode(node)
		if err != nil {
			log.Printf("preview: skipping region %q: %v", id, err)
			continue
		}
		var fill color.RGBA
		if id == hovered {
			fill = hoverFill
		} else {
			fill = baseFill
		}
		filler.SetColor(fill)
		p.AddTo(device)
		filler.Draw()
		filler.Clear()
	}
	return img, nil
}

// EncodePNG writes the preview image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
