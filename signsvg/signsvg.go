// Provides parsing of the sign templates.
// Templates are written in a small subset of SVG
// (path, circle and text-placeholder elements), and are parsed
// into an ordered list of draw intents, which can then be
// instantiated by the scene package.
package signsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/roadsign/signcolor"
	"golang.org/x/net/html/charset"
)

// ErrMalformedMarkup is returned when a recognized element misses
// a required attribute, or when a numeric attribute can't be parsed.
var ErrMalformedMarkup = errors.New("malformed markup")

// ErrorMode determines how unsupported elements are reported.
// Unsupported elements are never an error.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported elements
	WarnErrorMode
)

// DrawIntent is one parsed, not yet instantiated drawable.
// It is one of PathIntent, CircleIntent or TextPlaceholderIntent.
type DrawIntent interface {
	isDrawIntent()
}

// PathIntent is a filled path. Commands is the verbatim
// content of the `d` attribute, and is never empty.
type PathIntent struct {
	Commands string
	Fill     signcolor.RGB
}

// CircleIntent is a filled circle, with R > 0.
type CircleIntent struct {
	CX, CY, R    float64
	Fill         signcolor.RGB
	IsTempMarker bool
}

// TextPlaceholderIntent marks where the live limit is displayed.
// InitialValue is the `value` attribute, which is only
// an authoring hint: the displayed text comes from the sign state.
type TextPlaceholderIntent struct {
	InitialValue string
}

func (PathIntent) isDrawIntent()            {}
func (CircleIntent) isDrawIntent()          {}
func (TextPlaceholderIntent) isDrawIntent() {}

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// defaultViewBox is used when the root element has no size.
var defaultViewBox = Bounds{W: 300, H: 300}

// Description is the result of parsing a template:
// the draw intents, in paint order (back to front).
type Description struct {
	ViewBox Bounds
	Intents []DrawIntent
}

// Parse parses the given template.
func Parse(template string) (Description, error) {
	return ParseStream(strings.NewReader(template), IgnoreErrorMode)
}

// ParseStream reads the template from the given io.Reader.
// errMode determines if unsupported elements are ignored or
// logged as a warning.
func ParseStream(stream io.Reader, errMode ErrorMode) (Description, error) {
	cursor := &markupCursor{desc: Description{ViewBox: defaultViewBox}, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Description{}, fmt.Errorf("%w: %s", ErrMalformedMarkup, err)
		}
		if se, ok := t.(xml.StartElement); ok {
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return Description{}, err
			}
		}
	}
	if !seenTag {
		return Description{}, fmt.Errorf("%w: no element found", ErrMalformedMarkup)
	}
	return cursor.desc, nil
}

// ReadFile reads the template from the named file.
func ReadFile(templateFile string, errMode ErrorMode) (Description, error) {
	fin, err := os.Open(templateFile)
	if err != nil {
		return Description{}, err
	}
	defer fin.Close()
	return ParseStream(fin, errMode)
}
