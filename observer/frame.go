// Package observer streams world frames to websocket spectators
package observer

import (
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/entity"
)

// Frame is one spectator update; Seq is assigned by Publish
type Frame struct {
	Seq           uint64        `json:"seq"`
	PlayerAddress string        `json:"player_address"`
	Box           string        `json:"box"`
	Room          string        `json:"room,omitempty"`
	Things        []entity.View `json:"things"`
}

// FrameOf captures the player's box; invisible things are left out
func FrameOf(w *engine.World) Frame {
	box := w.Box()
	f := Frame{
		PlayerAddress: w.Player().Address,
		Box:           box,
		Things:        []entity.View{},
	}
	if room, ok := w.RoomName(box); ok {
		f.Room = room
	}
	for _, v := range w.ViewBox(box) {
		if v.Invisible {
			continue
		}
		f.Things = append(f.Things, v)
	}
	return f
}
