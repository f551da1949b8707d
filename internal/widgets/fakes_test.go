package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/matheus3301/univ/internal/themes"
	"go.uber.org/zap"
)

// grid records the cells drawn onto it.
type grid struct {
	w, h  int
	cells map[[2]int]rune
}

func (g *grid) Size() (int, int) { return g.w, g.h }
func (g *grid) Release()         {}

func (g *grid) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[[2]int{x, y}] = r
}

func (g *grid) Fill(r surface.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.SetContent(x, y, ch, style)
		}
	}
}

// row returns line y as a string.
func (g *grid) row(y int) string {
	out := make([]rune, g.w)
	for x := range out {
		out[x] = g.cells[[2]int{x, y}]
	}
	return string(out)
}

type peer struct {
	bounds   surface.Rect
	repaints int
	last     *grid
}

func (p *peer) HasFocus() bool  { return false }
func (p *peer) RequestRepaint() { p.repaints++ }
func (p *peer) Detach()         {}
func (p *peer) AcquireSurface() surface.Scoped {
	p.last = &grid{w: p.bounds.W, h: p.bounds.H, cells: map[[2]int]rune{}}
	return p.last
}

type parent struct {
	peers []*peer
}

func (p *parent) IsCreated() bool              { return true }
func (p *parent) BackgroundColor() tcell.Color { return tcell.ColorDefault }
func (p *parent) Attach(c *control.Control, id string, bounds surface.Rect, style control.Style) (control.Window, error) {
	w := &peer{bounds: bounds}
	p.peers = append(p.peers, w)
	return w, nil
}

func registry(t *testing.T) *theme.Registry {
	t.Helper()
	reg, err := themes.NewRegistry(nil, nil, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func create(t *testing.T, c *control.Control, w, h int, style control.Style) *peer {
	t.Helper()
	p := &parent{}
	if err := c.Create(p, "", control.Point{}, control.Size{W: w, H: h}, style, nil, "test"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return p.peers[0]
}
