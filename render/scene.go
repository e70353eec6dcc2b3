package render

import (
	"fmt"

	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/mode"
)

// Scene is everything one frame draws, captured after a transition
type Scene struct {
	PlayerAddress string
	Box           string
	Room          string
	X, Y          int
	Things        []entity.View // current box, player included

	ShowCoordinates  bool
	ShowAdvancedInfo bool
	Tooltips         engine.Tooltips
	Prompt           string
	Metrics          []string
	Muted            bool
}

// SceneOf captures the world and the modal state; modes may be nil
func SceneOf(w *engine.World, modes *mode.Machine, muted bool) Scene {
	p := w.Player()
	sc := Scene{
		PlayerAddress:    p.Address,
		Box:              w.Box(),
		X:                p.X,
		Y:                p.Y,
		Things:           w.ViewBox(w.Box()),
		ShowCoordinates:  w.ShowCoordinates,
		ShowAdvancedInfo: w.ShowAdvancedInfo,
		Tooltips:         w.Tooltips(),
		Muted:            muted,
	}
	if room, ok := w.RoomName(sc.Box); ok {
		sc.Room = room
	}
	if modes != nil && modes.Active() {
		sc.Prompt = modes.Prompt()
	}
	if sc.ShowAdvancedInfo {
		sc.Metrics = w.Metrics().Lines()
	}
	return sc
}

// StatusLines returns the text lines under the grid with their colours
func (sc Scene) StatusLines() []Line {
	box := sc.Box
	if box == "" {
		box = "(root)"
	}
	if sc.Room != "" {
		box += " - " + sc.Room
	}

	lines := []Line{
		{Text: "Address: " + sc.PlayerAddress, Color: RgbAddress},
		{Text: "Box: " + box, Color: RgbBox},
		{Text: fmt.Sprintf("Position: (%d, %d)", sc.X, sc.Y), Color: RgbPosition},
	}
	if sc.Tooltips.HasSign {
		lines = append(lines, Line{Text: "Sign: " + sc.Tooltips.Sign, Color: RgbTooltip})
	}
	if sc.Tooltips.HasOccupant {
		lines = append(lines, Line{
			Text:  "Created: " + sc.Tooltips.OccupantCreated.Format("2006-01-02 15:04:05"),
			Color: RgbTooltip,
		})
	}
	if sc.Prompt != "" {
		lines = append(lines, Line{Text: sc.Prompt + "_", Color: RgbPrompt})
	}
	if sc.Muted {
		lines = append(lines, Line{Text: "[muted]", Color: RgbMuted})
	}
	for _, m := range sc.Metrics {
		lines = append(lines, Line{Text: m, Color: RgbAdvanced})
	}
	return lines
}
