package entity

import "time"

// View is the per-thing record handed to renderers
type View struct {
	Kind      Kind      `json:"kind"`
	Symbol    string    `json:"symbol"`
	Color     RGB       `json:"color"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Address   string    `json:"address"`
	Box       string    `json:"box"`
	Invisible bool      `json:"invisible"`
	CreatedAt time.Time `json:"created_at"`
}

// View captures the render record for t
func (t *Thing) View() View {
	sym, color := t.Glyph()
	return View{
		Kind:      t.Kind,
		Symbol:    string(sym),
		Color:     color,
		X:         t.X,
		Y:         t.Y,
		Address:   t.Address,
		Box:       t.Box(),
		Invisible: t.Invisible,
		CreatedAt: t.CreatedAt,
	}
}
