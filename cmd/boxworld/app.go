package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxworld/audio"
	"github.com/lixenwraith/boxworld/config"
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/input"
	"github.com/lixenwraith/boxworld/mode"
	"github.com/lixenwraith/boxworld/observer"
	"github.com/lixenwraith/boxworld/persistence"
	"github.com/lixenwraith/boxworld/render"
)

// app is the orchestrating layer: one terminal event in, one transition out,
// followed by redraw, cues, spectator frame and save
type app struct {
	world     *engine.World
	machine   *input.Machine
	router    *mode.Router
	renderer  *render.Renderer
	screen    tcell.Screen
	sound     *audio.SoundManager
	spectate  *observer.Server
	persister *persistence.Persister
}

func newApp(cfg config.Config, world *engine.World, screen tcell.Screen, sound *audio.SoundManager, spectate *observer.Server, persister *persistence.Persister) (*app, error) {
	kt, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}
	machine := input.NewMachine()
	machine.SetKeyTable(kt)

	return &app{
		world:     world,
		machine:   machine,
		router:    mode.NewRouter(world, machine),
		renderer:  render.NewRenderer(screen),
		screen:    screen,
		sound:     sound,
		spectate:  spectate,
		persister: persister,
	}, nil
}

// loadWorld restores the saved document; only a world with no document gets the starter vortexes
func loadWorld(ctx context.Context, cfg config.Config, world *engine.World, persister *persistence.Persister) {
	world.Seed = cfg.World.Seed
	defer world.Refresh()

	loaded, err := persister.Load(ctx, world)
	if err != nil {
		log.Printf("load: %v (starting fresh)", err)
		return
	}
	if !loaded {
		n := world.PlaceVortexes(cfg.VortexSpecs())
		log.Printf("load: no saved world, placed %d starter vortexes", n)
	}
}

// publish redraws the terminal and pushes the frame to spectators
func (a *app) publish() {
	a.renderer.Draw(render.SceneOf(a.world, a.router.Modes(), a.sound.IsMuted()))
	a.spectate.Publish(observer.FrameOf(a.world))
}

// handle runs one event; reports whether the app should quit
func (a *app) handle(ctx context.Context, ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return false
	}

	out := a.router.Handle(intent)
	if out.ToggleMute {
		muted := a.sound.ToggleMute()
		log.Printf("audio: muted=%v", muted)
	}
	a.sound.PlayEvents(a.world.DrainEvents())

	if out.Resize {
		a.screen.Sync()
	}
	a.publish()

	if out.Changed {
		a.save(ctx)
	}
	return out.Quit
}

// save is best-effort; failures are logged and counted
func (a *app) save(ctx context.Context) {
	if err := a.persister.Save(ctx, a.world); err != nil {
		log.Printf("save: %v", err)
	}
}

// shutdown persists the final state
func (a *app) shutdown(ctx context.Context) {
	a.save(ctx)
	if err := a.persister.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
}
