package signpdf

import (
	"bytes"
	"os"
	"testing"

	"github.com/benoitkugler/roadsign/control"
	"github.com/benoitkugler/roadsign/scene"
	"github.com/benoitkugler/roadsign/signsvg"
	"github.com/jung-kurt/gofpdf"
)

func buildSign(t *testing.T) *scene.Graph {
	desc, err := signsvg.ReadFile("../template/speedlimit.svg", signsvg.IgnoreErrorMode)
	if err != nil {
		t.Fatalf("can't parse template: %s", err)
	}
	g, err := scene.Build(desc, scene.DefaultState())
	if err != nil {
		t.Fatalf("can't build scene: %s", err)
	}
	return g
}

func TestRenderSignToPDF(t *testing.T) {
	g := buildSign(t)
	control.New(g).ApplyTempFlag(true)

	var buf bytes.Buffer
	if err := RenderSignToPDF(&buf, g, 300, 300); err != nil {
		t.Fatalf("can't render pdf: %s", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a pdf")
	}
	if err := os.MkdirAll("testdata_out", os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("testdata_out/speedlimit.pdf", buf.Bytes(), os.ModePerm); err != nil {
		t.Fatal(err)
	}
}

func TestTextAlignment(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	r := NewRenderer(pdf)
	for _, align := range []scene.Align{scene.AlignLeft, scene.AlignCenter, scene.AlignRight} {
		r.DrawText(scene.TextRun{
			Lines: []string{"110", "5"},
			Align: align,
			X:     200, Y: 200,
			Size:  40,
			Color: scene.TempFill(true),
		})
	}
	r.DrawText(scene.TextRun{Lines: []string{"ignored"}, Size: 0})
	if err := pdf.Error(); err != nil {
		t.Fatal(err)
	}
}
