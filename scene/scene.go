// Instantiates parsed sign templates into a graph of
// drawable entities. Entities which must follow the sign state
// are tagged, so that they can later be mutated in place,
// without parsing or building the scene again.
package scene

import (
	"errors"

	"github.com/benoitkugler/roadsign/signcolor"
	"github.com/benoitkugler/roadsign/signpath"
	"github.com/benoitkugler/roadsign/signsvg"
)

var (
	// ErrMissingTag is returned when the template provides
	// no entity for a semantic tag.
	ErrMissingTag = errors.New("missing tagged entity")
	// ErrDuplicateTag is returned when the template provides
	// more than one entity for a semantic tag.
	ErrDuplicateTag = errors.New("duplicate tagged entity")
)

// Tag identifies the entities which follow the sign state.
type Tag uint8

const (
	NoTag Tag = iota
	LimitTextTag
	TempBackgroundTag
)

func (t Tag) String() string {
	switch t {
	case NoTag:
		return "NoTag"
	case LimitTextTag:
		return "LimitTextTag"
	case TempBackgroundTag:
		return "TempBackgroundTag"
	default:
		return "<unknown Tag>"
	}
}

// tags lists the tags every scene must provide exactly once.
var tags = [...]Tag{LimitTextTag, TempBackgroundTag}

// Shape is one of *PathShape, *CircleShape or *TextShape
type Shape interface {
	isShape()
}

// PathShape is a path compiled from its `d` attribute.
type PathShape struct {
	Data string // verbatim path data
	Path signpath.Path
}

// CircleShape is a circle, with its path approximation.
type CircleShape struct {
	CX, CY, R float64
	Path      signpath.Path
}

// Align is the horizontal alignment of text lines.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextShape is a text block, whose bounding box is
// centered on (X, Y). Lines are aligned inside the box according to Align.
type TextShape struct {
	Content string
	Align   Align
	X, Y    float64 // center of the text box
	Size    float64 // font size, in user units
}

func (*PathShape) isShape()   {}
func (*CircleShape) isShape() {}
func (*TextShape) isShape()   {}

// Entity is one renderable instance of the scene.
type Entity struct {
	Shape Shape
	Fill  signcolor.RGB
	Tag   Tag
}

// SetText updates the content of a text entity.
// It returns false if the entity is not a text.
func (e *Entity) SetText(content string) bool {
	text, ok := e.Shape.(*TextShape)
	if !ok {
		return false
	}
	text.Content = content
	return true
}

// Text returns the content of a text entity.
func (e *Entity) Text() (string, bool) {
	text, ok := e.Shape.(*TextShape)
	if !ok {
		return "", false
	}
	return text.Content, true
}

// Graph owns all the entities of a sign.
// Entities are stored in paint order, back to front.
type Graph struct {
	ViewBox  signsvg.Bounds
	Entities []*Entity

	tagged map[Tag]*Entity
}

// Lookup returns the entity carrying `tag`.
func (g *Graph) Lookup(tag Tag) (*Entity, bool) {
	if g == nil {
		return nil, false
	}
	e, ok := g.tagged[tag]
	return e, ok
}

// Target returns the matrix mapping the viewBox of the scene
// into the rectangle (x, y, w, h).
func (g *Graph) Target(x, y, w, h float64) signpath.Matrix2D {
	vb := g.ViewBox
	return signpath.Identity.Translate(x, y).Scale(w/vb.W, h/vb.H).Translate(-vb.X, -vb.Y)
}
