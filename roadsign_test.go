package roadsign

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/roadsign/scene"
	"github.com/benoitkugler/roadsign/signcolor"
	"github.com/benoitkugler/roadsign/signsvg"
)

func TestCompileEmbedded(t *testing.T) {
	sign, err := Compile(SpeedLimitTemplate, scene.DefaultState())
	if err != nil {
		t.Fatal(err)
	}
	if n := len(sign.Graph.Entities); n != 5 {
		t.Fatalf("expected 5 entities, got %d", n)
	}

	sign.Controller.ApplyLimit(30)
	sign.Controller.ApplyTempFlag(true)
	text, _ := sign.Graph.Lookup(scene.LimitTextTag)
	if s, _ := text.Text(); s != "30" {
		t.Errorf("expected 30, got %s", s)
	}
	bg, _ := sign.Graph.Lookup(scene.TempBackgroundTag)
	if bg.Fill != signcolor.Yellow {
		t.Errorf("expected yellow, got %v", bg.Fill)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, tc := range []struct {
		template string
		err      error
	}{
		{"", signsvg.ErrMalformedMarkup},
		{`<svg><circle cx="1" cy="1"/></svg>`, signsvg.ErrMalformedMarkup},
		{`<svg><path d="M0 0" fill="orange"/></svg>`, signcolor.ErrInvalidColorLiteral},
		{`<svg><path d="M0 0 L1 1"/></svg>`, scene.ErrMissingTag},
		{strings.Replace(SpeedLimitTemplate, "<text-placeholder", `<textgenerator value="1"/><text-placeholder`, 1), scene.ErrDuplicateTag},
	} {
		if _, err := Compile(tc.template, scene.DefaultState()); !errors.Is(err, tc.err) {
			t.Errorf("%q: expected %v, got %v", tc.template, tc.err, err)
		}
	}
}
