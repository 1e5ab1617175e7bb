// Package icon rasterizes the stylized printer glyph used for the print
// agent's tray and shell icons. All shape geometry is expressed against a
// 64 px reference edge and scaled proportionally to the requested size, so
// every resolution of the icon is visually self-similar.
package icon

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// RefSize is the reference edge length the glyph geometry is designed at.
const RefSize = 64

// ErrInvalidSize is returned by Draw when the requested size is below one
// pixel.
var ErrInvalidSize = errors.New("icon: size must be a positive number of pixels")

// Palette holds the six colors of the printer glyph. Callers inject a
// palette rather than the package holding mutable globals.
type Palette struct {
	Body    color.NRGBA // printer chassis
	Paper   color.NRGBA // sheet in the output slot
	Outline color.NRGBA // stroke around every shape
	Accent  color.NRGBA // front panel
	Button  color.NRGBA // power button, sizes >= 32 only
	Tray    color.NRGBA // paper tray under the chassis
}

// Default returns the steel-blue printer palette.
func Default() Palette {
	return Palette{
		Body:    color.NRGBA{R: 70, G: 130, B: 180, A: 255},
		Paper:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Outline: color.NRGBA{R: 40, G: 80, B: 120, A: 255},
		Accent:  color.NRGBA{R: 100, G: 180, B: 255, A: 255},
		Button:  color.NRGBA{R: 100, G: 200, B: 100, A: 255},
		Tray:    color.NRGBA{R: 60, G: 110, B: 160, A: 255},
	}
}

// Draw renders the printer glyph at size×size pixels on a transparent
// background. Shapes are painted back to front, so later shapes overlay
// earlier ones. The output depends only on size and pal.
func Draw(size int, pal Palette) (*image.NRGBA, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	scale := s / RefSize
	lw := max(1, round(2*scale))
	thin := max(1, lw-1)

	// Sheet sticking out of the output slot, behind everything else.
	outlinedRect(img, rect(0.25*s, 0.05*s, 0.5*s, 0.3*s), pal.Paper, pal.Outline, lw)

	// Chassis.
	body := rect(0.15*s, 0.25*s, 0.7*s, 0.5*s)
	outlinedRect(img, body, pal.Body, pal.Outline, lw)

	// Front panel, inset into the lower part of the chassis.
	panel := image.Rectangle{
		Min: image.Pt(body.Min.X+2*lw, body.Min.Y+round(0.3*0.5*s)),
		Max: image.Pt(body.Max.X-2*lw, body.Max.Y-2*lw),
	}
	if !panel.Empty() {
		outlinedRect(img, panel, pal.Accent, pal.Outline, thin)
	}

	// Power button. Unreadable below 32 px, so omitted there.
	if size >= 32 {
		cx := 0.15*s + 0.8*0.7*s
		cy := 0.25*s + 0.15*0.5*s
		outlinedCircle(img, cx, cy, 0.05*s, pal.Button, pal.Outline, thin)
	}

	// Paper tray across the chassis bottom edge.
	outlinedRect(img, rect(0.15*s, 0.75*s, 0.7*s, 0.15*s), pal.Tray, pal.Outline, lw)

	return img, nil
}

// rect converts a float origin and extent to integer pixel bounds.
func rect(x, y, w, h float64) image.Rectangle {
	return image.Rect(round(x), round(y), round(x+w), round(y+h))
}

// outlinedRect fills r with fill and strokes a w-pixel outline inward from
// its edges. The stroke covers the fill where they overlap.
func outlinedRect(img *image.NRGBA, r image.Rectangle, fill, stroke color.NRGBA, w int) {
	draw.Draw(img, r, image.NewUniform(stroke), image.Point{}, draw.Over)
	inner := r.Inset(w)
	if !inner.Empty() {
		draw.Draw(img, inner, image.NewUniform(fill), image.Point{}, draw.Over)
	}
}

// outlinedCircle fills a disc of radius rad centered at (cx, cy) and
// strokes a w-pixel rim inward. Pixels are sampled at their centers.
func outlinedCircle(img *image.NRGBA, cx, cy, rad float64, fill, stroke color.NRGBA, w int) {
	b := image.Rect(round(cx-rad)-1, round(cy-rad)-1, round(cx+rad)+1, round(cy+rad)+1)
	b = b.Intersect(img.Bounds())
	innerRad := rad - float64(w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			switch {
			case d <= innerRad:
				img.SetNRGBA(x, y, fill)
			case d <= rad:
				img.SetNRGBA(x, y, stroke)
			}
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
