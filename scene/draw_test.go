package scene

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/roadsign/signcolor"
	"github.com/benoitkugler/roadsign/signpath"
	"golang.org/x/image/math/fixed"
)

// recorder stores the operations sent by Draw
type recorder struct {
	paths  []signpath.Path
	colors []color.Color
	texts  []TextRun

	current signpath.Path
}

func (r *recorder) Start(a fixed.Point26_6)            { r.current.Start(a) }
func (r *recorder) Line(b fixed.Point26_6)             { r.current.Line(b) }
func (r *recorder) QuadBezier(b, c fixed.Point26_6)    { r.current.QuadBezier(b, c) }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.current.CubeBezier(b, c, d) }
func (r *recorder) Stop(closeLoop bool)                { r.current.Stop(closeLoop) }
func (r *recorder) Clear()                             { r.current = nil }
func (r *recorder) SetWinding(bool)                    {}
func (r *recorder) SetFillColor(c color.Color)         { r.colors = append(r.colors, c) }
func (r *recorder) Fill()                              { r.paths = append(r.paths, r.current) }
func (r *recorder) DrawText(run TextRun)               { r.texts = append(r.texts, run) }

func TestDraw(t *testing.T) {
	g, err := Build(canonical(t), DefaultState())
	if err != nil {
		t.Fatal(err)
	}
	var rec recorder
	g.Draw(&rec, g.Target(0, 0, 600, 600))

	if len(rec.paths) != 4 || len(rec.texts) != 1 {
		t.Fatalf("expected 4 paths and 1 text, got %d and %d", len(rec.paths), len(rec.texts))
	}
	expectedColors := []color.Color{signcolor.Black, signcolor.White, signcolor.RGB{R: 0xFF}, signcolor.White}
	for i, c := range expectedColors {
		if rec.colors[i] != c {
			t.Errorf("path %d: expected color %v, got %v", i, c, rec.colors[i])
		}
	}
	// the outer disc starts at (300, 150), scaled by 2
	if start := rec.paths[0][0]; start != (signpath.MoveTo{X: 600 * 64, Y: 300 * 64}) {
		t.Errorf("unexpected start %v", start)
	}
	run := rec.texts[0]
	if run.X != 300 || run.Y != 300 || run.Size != 2*TextSize || len(run.Lines) != 1 || run.Lines[0] != "90" {
		t.Errorf("unexpected text run %+v", run)
	}
}

func TestDrawFollowsMutations(t *testing.T) {
	g, err := Build(canonical(t), DefaultState())
	if err != nil {
		t.Fatal(err)
	}
	temp, _ := g.Lookup(TempBackgroundTag)
	temp.Fill = signcolor.Yellow
	text, _ := g.Lookup(LimitTextTag)
	text.SetText("40")

	var rec recorder
	g.Draw(&rec, signpath.Identity)
	if rec.colors[3] != signcolor.Yellow {
		t.Errorf("expected yellow background, got %v", rec.colors[3])
	}
	if rec.texts[0].Lines[0] != "40" {
		t.Errorf("expected 40, got %v", rec.texts[0].Lines)
	}
}
