package scene

import (
	"image/color"
	"strings"

	"github.com/benoitkugler/roadsign/signpath"
)

// Given a built scene, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Driver knows how to do the actual draw operations
// but doesn't need any template knowledge.
// In particular, transformation matrix are already applied to the points
// before sending them to the Driver.
type Driver interface {
	signpath.Adder

	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)

	// SetFillColor set the color for the current path
	SetFillColor(c color.Color)

	// Fill fills the accumulated path using the current settings
	Fill()

	// DrawText draws a text block, already in device space.
	DrawText(run TextRun)
}

// TextRun is a text block expressed in device space.
type TextRun struct {
	Lines []string
	Align Align
	X, Y  float64 // center of the text box
	Size  float64 // font size
	Color color.Color
}

// Draw paints the scene in order, mapping template coordinates
// with `m` (see Target).
func (g *Graph) Draw(d Driver, m signpath.Matrix2D) {
	for _, e := range g.Entities {
		switch shape := e.Shape.(type) {
		case *PathShape:
			fillPath(d, shape.Path, e.Fill, m)
		case *CircleShape:
			fillPath(d, shape.Path, e.Fill, m)
		case *TextShape:
			x, y := m.Transform(shape.X, shape.Y)
			d.DrawText(TextRun{
				Lines: strings.Split(shape.Content, "\n"),
				Align: shape.Align,
				X:     x,
				Y:     y,
				Size:  shape.Size * m.D,
				Color: e.Fill,
			})
		}
	}
}

func fillPath(d Driver, path signpath.Path, fill color.Color, m signpath.Matrix2D) {
	d.Clear()
	d.SetWinding(true)
	path.AddTo(d, m)
	d.SetFillColor(fill)
	d.Fill()
}
