package scene

import (
	"errors"
	"testing"

	"github.com/benoitkugler/roadsign/signcolor"
	"github.com/benoitkugler/roadsign/signsvg"
)

func canonical(t *testing.T) signsvg.Description {
	desc, err := signsvg.ReadFile("../template/speedlimit.svg", signsvg.IgnoreErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	return desc
}

func TestBuildCanonical(t *testing.T) {
	g, err := Build(canonical(t), DefaultState())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Entities) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(g.Entities))
	}

	temp, ok := g.Lookup(TempBackgroundTag)
	if !ok {
		t.Fatal("missing temp background")
	}
	if temp.Fill != signcolor.White {
		t.Errorf("expected white temp background, got %v", temp.Fill)
	}
	if temp != g.Entities[3] {
		t.Errorf("temp background should be the fourth entity")
	}

	text, ok := g.Lookup(LimitTextTag)
	if !ok {
		t.Fatal("missing limit text")
	}
	if s, _ := text.Text(); s != "90" {
		t.Errorf("expected initial text 90, got %q", s)
	}
	shape := text.Shape.(*TextShape)
	if shape.X != 150 || shape.Y != 150 || shape.Align != AlignRight || shape.Size != TextSize {
		t.Errorf("unexpected text shape %+v", shape)
	}

	if _, ok := g.Entities[0].Shape.(*PathShape); !ok || g.Entities[0].Fill != signcolor.Black {
		t.Errorf("unexpected first entity %+v", g.Entities[0])
	}
	if ring := g.Entities[2]; ring.Tag != NoTag || ring.Fill != (signcolor.RGB{R: 0xFF}) {
		t.Errorf("unexpected ring entity %+v", ring)
	}
}

func TestBuildTemporary(t *testing.T) {
	g, err := Build(canonical(t), SignState{Limit: 5, IsTemp: true})
	if err != nil {
		t.Fatal(err)
	}
	temp, _ := g.Lookup(TempBackgroundTag)
	if temp.Fill != signcolor.Yellow {
		t.Errorf("expected yellow temp background, got %v", temp.Fill)
	}
	text, _ := g.Lookup(LimitTextTag)
	if s, _ := text.Text(); s != "5" {
		t.Errorf("expected initial text 5, got %q", s)
	}
}

func TestBuildTagErrors(t *testing.T) {
	for _, tc := range []struct {
		template string
		err      error
	}{
		{`<svg><text-placeholder value="1"/></svg>`, ErrMissingTag},
		{`<svg><circle cx="1" cy="1" r="1" tempMarker="t"/></svg>`, ErrMissingTag},
		{`<svg><circle cx="1" cy="1" r="1" tempMarker="t"/><circle cx="1" cy="1" r="2" tempMarker="t"/><text-placeholder value="1"/></svg>`, ErrDuplicateTag},
		{`<svg><circle cx="1" cy="1" r="1" tempMarker="t"/><text-placeholder value="1"/><text-placeholder value="2"/></svg>`, ErrDuplicateTag},
		{`<svg><circle cx="1" cy="1" r="1" tempMarker="t"/><text-placeholder value="1"/><path d="L 2 2"/></svg>`, signsvg.ErrMalformedMarkup},
	} {
		desc, err := signsvg.Parse(tc.template)
		if err != nil {
			t.Fatal(err)
		}
		_, err = Build(desc, DefaultState())
		if !errors.Is(err, tc.err) {
			t.Errorf("expected %v for %s, got %v", tc.err, tc.template, err)
		}
	}
}

func TestEntityText(t *testing.T) {
	e := &Entity{Shape: &CircleShape{R: 1}}
	if e.SetText("1") {
		t.Error("circles have no text")
	}
	if _, ok := e.Text(); ok {
		t.Error("circles have no text")
	}
	var g *Graph
	if _, ok := g.Lookup(LimitTextTag); ok {
		t.Error("nil graph has no entity")
	}
}

func TestSignState(t *testing.T) {
	if err := DefaultState().Validate(); err != nil {
		t.Error(err)
	}
	for _, limit := range []uint32{0, 4, 111, 1000} {
		if err := (SignState{Limit: limit}).Validate(); err == nil {
			t.Errorf("limit %d should be rejected", limit)
		}
	}
	if s := FormatLimit(110); s != "110" {
		t.Errorf("unexpected format %s", s)
	}
}
