// Package panel is a terminal control panel editing the sign state.
// It shows the two sign controls, a coarse preview of the sign, and
// forwards every change to a Controller.
package panel

import (
	"fmt"
	"image"

	"github.com/benoitkugler/roadsign/control"
	"github.com/benoitkugler/roadsign/scene"
	"github.com/benoitkugler/roadsign/signraster"
	"github.com/gdamore/tcell/v2"
)

// PreviewSize is the side, in pixels, of the preview. Two pixels
// are packed per terminal cell vertically.
const PreviewSize = 32

type Panel struct {
	screen tcell.Screen
	ctrl   *control.Controller
	state  scene.SignState

	preview         *image.RGBA
	previewRenderer *signraster.Renderer // reused across redraws

	// OnChange is called after the controller has applied a new state.
	OnChange func(scene.SignState)
}

// Open initializes the terminal and returns a panel drawing on it.
// Close must be called to restore the terminal.
func Open(ctrl *control.Controller, initial scene.SignState) (*Panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, ctrl, initial), nil
}

// New returns a panel using an already initialized screen.
func New(screen tcell.Screen, ctrl *control.Controller, initial scene.SignState) *Panel {
	return &Panel{screen: screen, ctrl: ctrl, state: initial}
}

// State returns the current sign state.
func (p *Panel) State() scene.SignState { return p.state }

func (p *Panel) Close() { p.screen.Fini() }

// Run processes events until the user quits.
func (p *Panel) Run() {
	p.Draw()
	for {
		ev := p.screen.PollEvent()
		if ev == nil { // screen finalized
			return
		}
		if p.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one input event and returns true when
// the user asked to quit.
func (p *Panel) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft, tcell.KeyDown:
			p.stepLimit(-1)
		case tcell.KeyRight, tcell.KeyUp:
			p.stepLimit(1)
		case tcell.KeyPgDn:
			p.stepLimit(-10)
		case tcell.KeyPgUp:
			p.stepLimit(10)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ', 't':
				next := p.state
				next.IsTemp = !next.IsTemp
				p.apply(next)
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
		p.Draw()
	}
	return false
}

func (p *Panel) stepLimit(steps int) {
	next := p.state
	next.Limit = control.LimitControl.Clamp(int(p.state.Limit) + steps*control.LimitControl.Step)
	p.apply(next)
}

func (p *Panel) apply(next scene.SignState) {
	if next == p.state {
		return
	}
	p.ctrl.Sync(p.state, next)
	p.state = next
	if p.OnChange != nil {
		p.OnChange(next)
	}
	p.Draw()
}

func (p *Panel) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw repaints the whole panel.
func (p *Panel) Draw() {
	p.screen.Clear()
	bold := tcell.StyleDefault.Bold(true)

	p.drawString(1, 0, "Speed limit sign", bold)
	lc, tc := control.LimitControl, control.TempControl
	p.drawString(1, 2, fmt.Sprintf("%s: %3d  [%d, %d]", lc.Label, p.state.Limit, lc.Min, lc.Max), tcell.StyleDefault)
	check := "[ ]"
	if p.state.IsTemp {
		check = "[x]"
	}
	p.drawString(1, 3, fmt.Sprintf("%s %s", check, tc.Label), tcell.StyleDefault)
	p.drawString(1, 5, "←/→ ±1  PgDn/PgUp ±10  space toggle  q quit", tcell.StyleDefault.Dim(true))

	if g := p.ctrl.Graph(); g != nil && p.renderPreview(g) == nil {
		p.drawPreview(p.preview, 1, 7)
	}
	p.screen.Show()
}

func (p *Panel) renderPreview(g *scene.Graph) error {
	if p.previewRenderer == nil {
		img := image.NewRGBA(image.Rect(0, 0, PreviewSize, PreviewSize))
		rd, err := signraster.NewRenderer(img, nil)
		if err != nil {
			return err
		}
		p.preview, p.previewRenderer = img, rd
	}
	return p.previewRenderer.DrawSign(g)
}

func cellColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawPreview packs two rows of pixels per cell with a half block.
func (p *Panel) drawPreview(img *image.RGBA, left, top int) {
	b := img.Bounds()
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			style := tcell.StyleDefault.Foreground(cellColor(img, x, y)).Background(cellColor(img, x, y+1))
			p.screen.SetContent(left+x, top+y/2, '▀', nil, style)
		}
	}
}
