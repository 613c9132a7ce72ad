package signsvg

import (
	"errors"
	"testing"

	"github.com/benoitkugler/roadsign/signcolor"
)

func TestCanonicalTemplate(t *testing.T) {
	desc, err := ReadFile("../template/speedlimit.svg", WarnErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if desc.ViewBox != (Bounds{0, 0, 300, 300}) {
		t.Errorf("unexpected viewBox %v", desc.ViewBox)
	}
	if len(desc.Intents) != 5 {
		t.Fatalf("expected 5 intents, got %d", len(desc.Intents))
	}

	outer, ok := desc.Intents[0].(PathIntent)
	if !ok || outer.Fill != signcolor.Black {
		t.Errorf("expected black outer path, got %v", desc.Intents[0])
	}
	inner, ok := desc.Intents[1].(PathIntent)
	if !ok || inner.Fill != signcolor.White {
		t.Errorf("expected white inner path, got %v", desc.Intents[1])
	}
	ring, ok := desc.Intents[2].(CircleIntent)
	if !ok || ring.R != 142 || ring.Fill != (signcolor.RGB{R: 0xFF}) || ring.IsTempMarker {
		t.Errorf("unexpected red ring %v", desc.Intents[2])
	}
	marker, ok := desc.Intents[3].(CircleIntent)
	if !ok || marker.R != 119 || marker.CX != 150 || marker.CY != 150 || !marker.IsTempMarker {
		t.Errorf("unexpected temp marker %v", desc.Intents[3])
	}
	text, ok := desc.Intents[4].(TextPlaceholderIntent)
	if !ok || text.InitialValue != "50" {
		t.Errorf("unexpected text placeholder %v", desc.Intents[4])
	}

	markers := 0
	for _, intent := range desc.Intents {
		if c, ok := intent.(CircleIntent); ok && c.IsTempMarker {
			markers++
		}
	}
	if markers != 1 {
		t.Errorf("expected exactly one temp marker, got %d", markers)
	}
}

func TestDocumentOrder(t *testing.T) {
	desc, err := Parse(`<svg><g>
		<circle cx="1" cy="2" r="3"/>
		<unknown foo="bar"/>
		<path d="M0 0 L 1 1" fill="blue"/>
		<textgenerator value="x"/>
		<circle cx="1" cy="2" r="4" fill="green" tempMarker=""/>
	</g></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(desc.Intents) != 4 {
		t.Fatalf("expected 4 intents, got %d", len(desc.Intents))
	}
	if c := desc.Intents[0].(CircleIntent); c.R != 3 || c.Fill != signcolor.Black {
		t.Errorf("unexpected first intent %v", c)
	}
	if p := desc.Intents[1].(PathIntent); p.Commands != "M0 0 L 1 1" {
		t.Errorf("path commands should be copied verbatim, got %q", p.Commands)
	}
	if _, ok := desc.Intents[2].(TextPlaceholderIntent); !ok {
		t.Errorf("expected text placeholder, got %T", desc.Intents[2])
	}
	if c := desc.Intents[3].(CircleIntent); c.IsTempMarker {
		t.Errorf("an empty tempMarker should not mark the circle")
	}
	if desc.ViewBox != defaultViewBox {
		t.Errorf("expected default viewBox, got %v", desc.ViewBox)
	}
}

func TestMalformed(t *testing.T) {
	for _, template := range []string{
		``,
		`<svg><path fill="red"/></svg>`,
		`<svg><path d="" /></svg>`,
		`<svg><circle cy="1" r="1"/></svg>`,
		`<svg><circle cx="a" cy="1" r="1"/></svg>`,
		`<svg><circle cx="1" cy="1" r="0"/></svg>`,
		`<svg><circle cx="1" cy="1" r="-2"/></svg>`,
		`<svg><text-placeholder/></svg>`,
		`<svg viewBox="0 0 300"></svg>`,
		`<svg><circle cx="NaN" cy="1" r="1"/></svg>`,
		`<svg><circle cx="1" cy="1" r="Inf"/></svg>`,
		`<svg><circle cx="1" cy="+Infinity" r="1"/></svg>`,
		`<svg viewBox="0 0 Inf 300"></svg>`,
		`<svg width="NaN" height="300"></svg>`,
		`<svg><path d="M0 0"></svg>`,
	} {
		_, err := Parse(template)
		if !errors.Is(err, ErrMalformedMarkup) {
			t.Errorf("expected malformed markup for %q, got %v", template, err)
		}
	}
}

func TestInvalidColor(t *testing.T) {
	_, err := Parse(`<svg><circle cx="1" cy="1" r="1" fill="zz"/></svg>`)
	if !errors.Is(err, signcolor.ErrInvalidColorLiteral) {
		t.Errorf("expected invalid color, got %v", err)
	}
	if errors.Is(err, ErrMalformedMarkup) {
		t.Errorf("color errors should be reported separately")
	}
}
