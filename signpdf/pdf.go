// Implements a PDF backend to render signs,
// by wrapping github.com/jung-kurt/gofpdf.
package signpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/roadsign/scene"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ scene.Driver = (*Renderer)(nil) // assert interface conformance

// capHeight is the approximate height of digits
// in Helvetica, relative to the font size.
const capHeight = 0.72

type Renderer struct {
	pdf               *gofpdf.Fpdf
	useNonZeroWinding bool
}

// NewRenderer return a renderer which will
// write to the current page of the given `pdf`.
// The pdf unit is expected to be the point.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf, useNonZeroWinding: true}
}

// RenderSignToPDF writes a one page document of size w x h (in points),
// showing the scene stretched to the whole page.
func RenderSignToPDF(out io.Writer, g *scene.Graph, w, h float64) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	g.Draw(NewRenderer(pdf), g.Target(0, 0, w, h))
	return pdf.Output(out)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (r *Renderer) Clear() {}

func (r *Renderer) Start(a fixed.Point26_6) {
	r.pdf.MoveTo(fixedTof(a))
}

func (r *Renderer) Line(b fixed.Point26_6) {
	r.pdf.LineTo(fixedTof(b))
}

func (r *Renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	r.pdf.CurveTo(cx, cy, x, y)
}

func (r *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	r.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (r *Renderer) Stop(closeLoop bool) {
	if closeLoop {
		r.pdf.ClosePath()
	}
}

func (r *Renderer) SetWinding(useNonZeroWinding bool) {
	r.useNonZeroWinding = useNonZeroWinding
}

func rgb(c color.Color) (int, int, int) {
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}

func (r *Renderer) SetFillColor(c color.Color) {
	r.pdf.SetFillColor(rgb(c))
}

func (r *Renderer) Fill() {
	styleStr := "f*"
	if r.useNonZeroWinding {
		styleStr = "f"
	}
	r.pdf.DrawPath(styleStr)
}

func (r *Renderer) DrawText(run scene.TextRun) {
	if run.Size <= 0 || len(run.Lines) == 0 {
		return
	}
	r.pdf.SetFont("Helvetica", "B", run.Size)
	r.pdf.SetTextColor(rgb(run.Color))

	lineHeight := run.Size
	widths := make([]float64, len(run.Lines))
	var boxWidth float64
	for i, line := range run.Lines {
		widths[i] = r.pdf.GetStringWidth(line)
		if widths[i] > boxWidth {
			boxWidth = widths[i]
		}
	}
	left := run.X - boxWidth/2
	// first baseline, so that the block of lines is vertically centered
	baseline := run.Y - lineHeight*float64(len(run.Lines)-1)/2 + run.Size*capHeight/2
	for i, line := range run.Lines {
		x := left
		switch run.Align {
		case scene.AlignCenter:
			x += (boxWidth - widths[i]) / 2
		case scene.AlignRight:
			x += boxWidth - widths[i]
		}
		r.pdf.Text(x, baseline+float64(i)*lineHeight, line)
	}
}
