// Implements a raster backend to render signs,
// by wrapping rasterx.
package signraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/roadsign/scene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var _ scene.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	filler *rasterx.Filler
	dst    draw.Image

	font  *opentype.Font
	faces map[float64]font.Face // by size
	err   error                 // first text error
}

// NewRenderer returns a renderer drawing into `dst`.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
func NewRenderer(dst draw.Image, scanner rasterx.Scanner) (*Renderer, error) {
	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	b := dst.Bounds()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	}
	return &Renderer{
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dst:    dst,
		font:   fnt,
		faces:  make(map[float64]font.Face),
	}, nil
}

// RasterSign renders the scene into a new w x h image,
// stretching its viewBox to the whole image.
func RasterSign(g *scene.Graph, w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	renderer, err := NewRenderer(img, nil)
	if err != nil {
		return nil, err
	}
	return img, renderer.DrawSign(g)
}

// DrawSign erases the destination image and paints the scene
// stretched to its bounds. A renderer may be reused for successive
// states of the same scene: the font and the faces are kept.
func (rd *Renderer) DrawSign(g *scene.Graph) error {
	b := rd.dst.Bounds()
	draw.Draw(rd.dst, b, image.Transparent, image.Point{}, draw.Src)
	rd.err = nil
	g.Draw(rd, g.Target(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())))
	return rd.err
}

// WritePNG renders the scene and encodes it as PNG.
func WritePNG(out io.Writer, g *scene.Graph, w, h int) error {
	img, err := RasterSign(g, w, h)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

// Err returns the first error met while drawing text.
func (rd *Renderer) Err() error { return rd.err }

func (rd *Renderer) Clear() {
	rd.filler.Clear()
}

func (rd *Renderer) SetWinding(useNonZeroWinding bool) {
	rd.filler.SetWinding(useNonZeroWinding)
}

func (rd *Renderer) SetFillColor(c color.Color) {
	rd.filler.SetColor(c)
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
}

func (rd *Renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) face(size float64) (font.Face, error) {
	if face, ok := rd.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(rd.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	rd.faces[size] = face
	return face, nil
}

func toF(v fixed.Int26_6) float64 { return float64(v) / 64 }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func (rd *Renderer) DrawText(run scene.TextRun) {
	if run.Size <= 0 || len(run.Lines) == 0 {
		return
	}
	face, err := rd.face(run.Size)
	if err != nil {
		if rd.err == nil {
			rd.err = err
		}
		return
	}
	metrics := face.Metrics()
	ascent, lineHeight := toF(metrics.Ascent), toF(metrics.Ascent+metrics.Descent)

	widths := make([]float64, len(run.Lines))
	var boxWidth float64
	for i, line := range run.Lines {
		widths[i] = toF(font.MeasureString(face, line))
		if widths[i] > boxWidth {
			boxWidth = widths[i]
		}
	}
	left := run.X - boxWidth/2
	top := run.Y - lineHeight*float64(len(run.Lines))/2

	drawer := font.Drawer{Dst: rd.dst, Src: image.NewUniform(run.Color), Face: face}
	for i, line := range run.Lines {
		x := left
		switch run.Align {
		case scene.AlignCenter:
			x += (boxWidth - widths[i]) / 2
		case scene.AlignRight:
			x += boxWidth - widths[i]
		}
		drawer.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(top + float64(i)*lineHeight + ascent)}
		drawer.DrawString(line)
	}
}
