package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxworld/entity"
)

var (
	RgbBackground = tcell.NewRGBColor(20, 20, 40)    // Dark blue
	RgbCoordinate = tcell.NewRGBColor(100, 100, 100) // Dimmed cell letters
	RgbAddress    = tcell.NewRGBColor(100, 255, 100) // Bright green
	RgbBox        = tcell.NewRGBColor(150, 150, 255) // Light blue
	RgbPosition   = tcell.NewRGBColor(255, 200, 100) // Orange
	RgbTooltip    = tcell.NewRGBColor(220, 220, 220)
	RgbPrompt     = tcell.NewRGBColor(255, 255, 255)
	RgbAdvanced   = tcell.NewRGBColor(140, 140, 160)
	RgbMuted      = tcell.NewRGBColor(255, 80, 80)
)

// ToColor converts an entity colour to a tcell colour
func ToColor(c entity.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// HSVToRGB converts hue in degrees with saturation and value in [0,1]
func HSVToRGB(h, s, v float64) entity.RGB {
	i := int(h/60) % 6
	f := h/60 - float64(int(h/60))
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return entity.RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// BorderColor returns the rainbow colour of frame cell (x, y)
func BorderColor(x, y int) entity.RGB {
	return HSVToRGB(float64((x+y)*30%360), 1.0, 1.0)
}
