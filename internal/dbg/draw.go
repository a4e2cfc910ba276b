package dbg

import (
	"math"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/compass/coordinate"
	"github.com/osuushi/compass/geometry"
	"github.com/pkg/errors"
)

// Padding around the drawing so lines on the bounding box stay visible
const drawPadding = 20

// Largest image side Draw will allocate, in pixels
const maxDrawSide = 1 << 14

// Draw renders lines to a PNG at path. Lines are drawn in cyan, and the
// coordinate at which a line stops being simple is marked in red. Scale is
// pixels per unit.
func Draw(path string, scale float64, lines ...*coordinate.Sequence) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, line := range lines {
		it := line.Iterator()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
		}
	}
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw")
	}

	// Size in float first, so a huge extent can't overflow the int conversion
	w := scale*(maxX-minX) + drawPadding*2
	h := scale*(maxY-minY) + drawPadding*2
	if !(w <= maxDrawSide && h <= maxDrawSide) {
		return errors.Errorf("drawing too large: %vx%v px", w, h)
	}

	// Set up the context
	width := int(w)
	height := int(h)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, line := range lines {
		it := line.Iterator()
		first := true
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if first {
				c.MoveTo(p.X(), p.Y())
				first = false
				continue
			}
			c.LineTo(p.X(), p.Y())
		}
		c.Stroke()
	}

	// Divide by scale so markers are the same size at any zoom
	c.SetRGB(1, 0, 0)
	for _, line := range lines {
		if p, ok := FirstViolation(line); ok {
			c.DrawCircle(p.X(), p.Y(), 4/scale)
			c.Fill()
		}
	}

	return errors.Wrap(c.SavePNG(path), "save png")
}

// FirstViolation returns the coordinate at which line stops being simple.
func FirstViolation(line *coordinate.Sequence) (coordinate.Coordinate, bool) {
	checker := geometry.NewChecker(line.Len())
	it := line.Iterator()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if !checker.Push(p) {
			return p, true
		}
	}
	return coordinate.Coordinate{}, false
}

// Show prints a PNG to the terminal. This only works in iTerm.
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Dump is a deep, multi-line rendering of v.
func Dump(v ...interface{}) string {
	return spew.Sdump(v...)
}
