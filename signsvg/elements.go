package signsvg

import (
	"encoding/xml"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/roadsign/signcolor"
)

// markupCursor is used while parsing templates
type markupCursor struct {
	desc      Description
	errorMode ErrorMode
}

type elementFunc func(c *markupCursor, attrs attributes) error

var elementFuncs = map[string]elementFunc{
	"svg":              svgF,
	"path":             pathF,
	"circle":           circleF,
	"text-placeholder": textF,
	"textgenerator":    textF, // legacy name of text-placeholder
}

// attributes indexes the attributes of an element by local name.
type attributes struct {
	tag    string
	values map[string]string
}

func newAttributes(se xml.StartElement) attributes {
	out := attributes{tag: se.Name.Local, values: make(map[string]string, len(se.Attr))}
	for _, attr := range se.Attr {
		out.values[attr.Name.Local] = attr.Value
	}
	return out
}

// lookup returns nil if the attribute is absent
func (a attributes) lookup(name string) *string {
	v, ok := a.values[name]
	if !ok {
		return nil
	}
	return &v
}

func (a attributes) required(name string) (string, error) {
	v, ok := a.values[name]
	if !ok {
		return "", fmt.Errorf("%w: <%s> requires attribute %q", ErrMalformedMarkup, a.tag, name)
	}
	return v, nil
}

func (a attributes) float(name string) (float64, error) {
	v, err := a.required(name)
	if err != nil {
		return 0, err
	}
	f, err := parseBasicFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> attribute %q: invalid number %q", ErrMalformedMarkup, a.tag, name, v)
	}
	return f, nil
}

func (a attributes) fill() (signcolor.RGB, error) {
	c, err := signcolor.Resolve(a.lookup("fill"))
	if err != nil {
		return c, fmt.Errorf("<%s> fill: %w", a.tag, err)
	}
	return c, nil
}

// parseBasicFloat only accepts finite numbers.
func parseBasicFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non finite number %q", s)
	}
	return f, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

func (c *markupCursor) readStartElement(se xml.StartElement) error {
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		if c.errorMode == WarnErrorMode {
			log.Println("Ignoring template element " + se.Name.Local)
		}
		return nil
	}
	return df(c, newAttributes(se))
}

func (c *markupCursor) emit(intent DrawIntent) {
	c.desc.Intents = append(c.desc.Intents, intent)
}

func svgF(c *markupCursor, attrs attributes) error {
	var vb Bounds
	if v := attrs.lookup("viewBox"); v != nil {
		fields := splitOnCommaOrSpace(*v)
		if len(fields) != 4 {
			return fmt.Errorf("%w: <svg> viewBox %q", ErrMalformedMarkup, *v)
		}
		var points [4]float64
		for i, f := range fields {
			var err error
			if points[i], err = parseBasicFloat(f); err != nil {
				return fmt.Errorf("%w: <svg> viewBox %q", ErrMalformedMarkup, *v)
			}
		}
		vb = Bounds{X: points[0], Y: points[1], W: points[2], H: points[3]}
	}
	if vb.W == 0 && attrs.lookup("width") != nil {
		w, err := attrs.float("width")
		if err != nil {
			return err
		}
		vb.W = w
	}
	if vb.H == 0 && attrs.lookup("height") != nil {
		h, err := attrs.float("height")
		if err != nil {
			return err
		}
		vb.H = h
	}
	if vb.W > 0 && vb.H > 0 {
		c.desc.ViewBox = vb
	}
	return nil
}

func pathF(c *markupCursor, attrs attributes) error {
	d, err := attrs.required("d")
	if err != nil {
		return err
	}
	if strings.TrimSpace(d) == "" {
		return fmt.Errorf("%w: <path> has empty %q", ErrMalformedMarkup, "d")
	}
	fill, err := attrs.fill()
	if err != nil {
		return err
	}
	c.emit(PathIntent{Commands: d, Fill: fill})
	return nil
}

func circleF(c *markupCursor, attrs attributes) error {
	var (
		intent CircleIntent
		err    error
	)
	if intent.CX, err = attrs.float("cx"); err != nil {
		return err
	}
	if intent.CY, err = attrs.float("cy"); err != nil {
		return err
	}
	if intent.R, err = attrs.float("r"); err != nil {
		return err
	}
	if !(intent.R > 0) {
		return fmt.Errorf("%w: <circle> radius must be positive, got %g", ErrMalformedMarkup, intent.R)
	}
	if intent.Fill, err = attrs.fill(); err != nil {
		return err
	}
	if marker := attrs.lookup("tempMarker"); marker != nil && *marker != "" {
		intent.IsTempMarker = true
	}
	c.emit(intent)
	return nil
}

func textF(c *markupCursor, attrs attributes) error {
	v, err := attrs.required("value")
	if err != nil {
		return err
	}
	c.emit(TextPlaceholderIntent{InitialValue: v})
	return nil
}
