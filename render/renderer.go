// Package render draws the current box and status lines with tcell
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/boxworld/address"
)

const (
	// GridCells is the framed grid size: 5 cells plus the border on each side
	GridCells = address.GridSize + 2

	// CellWidth is the number of terminal columns per grid cell
	CellWidth = 2

	borderRune = '█'
)

// Line is one coloured status line
type Line struct {
	Text  string
	Color tcell.Color
}

// Renderer draws scenes onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one full frame and shows it
func (r *Renderer) Draw(sc Scene) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(base)
	r.screen.Clear()

	r.drawGrid(sc, base)

	width, _ := r.screen.Size()
	for i, line := range sc.StatusLines() {
		r.drawText(0, GridCells+1+i, width, line.Text, base.Foreground(line.Color))
	}

	r.screen.Show()
}

func (r *Renderer) drawGrid(sc Scene, base tcell.Style) {
	occupants := make(map[int]int, len(sc.Things)) // cell index -> index into Things
	for i, v := range sc.Things {
		if v.Invisible {
			continue
		}
		idx := v.Y*address.GridSize + v.X
		// The player wins its cell
		if prev, ok := occupants[idx]; ok && sc.Things[prev].Address == sc.PlayerAddress {
			continue
		}
		occupants[idx] = i
	}

	for gy := 0; gy < GridCells; gy++ {
		for gx := 0; gx < GridCells; gx++ {
			if gy == 0 || gy == GridCells-1 || gx == 0 || gx == GridCells-1 {
				style := base.Foreground(ToColor(BorderColor(gx, gy)))
				r.setCell(gx, gy, borderRune, borderRune, style)
				continue
			}

			x, y := gx-1, gy-1
			idx := y*address.GridSize + x
			if i, ok := occupants[idx]; ok {
				v := sc.Things[i]
				sym := []rune(v.Symbol)[0]
				r.setCell(gx, gy, sym, ' ', base.Foreground(ToColor(v.Color)))
				continue
			}
			if sc.ShowCoordinates {
				r.setCell(gx, gy, rune(address.Encode(x, y)), ' ', base.Foreground(RgbCoordinate))
				continue
			}
			r.setCell(gx, gy, ' ', ' ', base)
		}
	}
}

func (r *Renderer) setCell(gx, gy int, first, second rune, style tcell.Style) {
	r.screen.SetContent(gx*CellWidth, gy, first, nil, style)
	r.screen.SetContent(gx*CellWidth+1, gy, second, nil, style)
}

// drawText writes s at (x, y), truncated to the screen width by display columns
func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) {
	if width <= x {
		return
	}
	s = runewidth.Truncate(s, width-x, "…")
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
