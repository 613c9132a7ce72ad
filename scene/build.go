package scene

import (
	"fmt"

	"github.com/benoitkugler/roadsign/signcolor"
	"github.com/benoitkugler/roadsign/signpath"
	"github.com/benoitkugler/roadsign/signsvg"
)

// TextSize is the font size of the limit, in template units.
const TextSize = 180

// Build instantiates one entity per draw intent, in order.
// The temp marker circle and the text placeholder are tagged,
// and initialized from `initial` rather than from the template.
// Build fails unless exactly one entity is produced for each tag.
func Build(desc signsvg.Description, initial SignState) (*Graph, error) {
	g := &Graph{
		ViewBox:  desc.ViewBox,
		Entities: make([]*Entity, 0, len(desc.Intents)),
		tagged:   make(map[Tag]*Entity, len(tags)),
	}
	for i, intent := range desc.Intents {
		e, err := g.newEntity(intent, initial)
		if err != nil {
			return nil, fmt.Errorf("draw intent %d: %w", i, err)
		}
		if e.Tag != NoTag {
			if _, has := g.tagged[e.Tag]; has {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateTag, e.Tag)
			}
			g.tagged[e.Tag] = e
		}
		g.Entities = append(g.Entities, e)
	}
	for _, tag := range tags {
		if _, has := g.tagged[tag]; !has {
			return nil, fmt.Errorf("%w: %s", ErrMissingTag, tag)
		}
	}
	return g, nil
}

func (g *Graph) newEntity(intent signsvg.DrawIntent, initial SignState) (*Entity, error) {
	switch intent := intent.(type) {
	case signsvg.PathIntent:
		path, err := signpath.Compile(intent.Commands)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", signsvg.ErrMalformedMarkup, err)
		}
		return &Entity{Shape: &PathShape{Data: intent.Commands, Path: path}, Fill: intent.Fill}, nil
	case signsvg.CircleIntent:
		e := &Entity{
			Shape: &CircleShape{
				CX: intent.CX, CY: intent.CY, R: intent.R,
				Path: signpath.Ellipse(intent.CX, intent.CY, intent.R, intent.R),
			},
			Fill: intent.Fill,
		}
		if intent.IsTempMarker {
			e.Tag = TempBackgroundTag
			e.Fill = TempFill(initial.IsTemp)
		}
		return e, nil
	case signsvg.TextPlaceholderIntent:
		vb := g.ViewBox
		return &Entity{
			Shape: &TextShape{
				Content: FormatLimit(initial.Limit),
				Align:   AlignRight,
				X:       vb.X + vb.W/2,
				Y:       vb.Y + vb.H/2,
				Size:    TextSize,
			},
			Fill: signcolor.Black,
			Tag:  LimitTextTag,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported draw intent %T", intent)
	}
}
