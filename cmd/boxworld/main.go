package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxworld/audio"
	"github.com/lixenwraith/boxworld/config"
	"github.com/lixenwraith/boxworld/core"
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/observer"
	"github.com/lixenwraith/boxworld/persistence"
	"github.com/lixenwraith/boxworld/service"
	"github.com/lixenwraith/boxworld/status"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "Path to the YAML config file")
	debugFlag    = flag.Bool("debug", false, "Write logs to the log directory")
	saveFlag     = flag.String("save", "", "Override save.path")
	observerFlag = flag.String("observe", "", "Override observer.addr, e.g. 127.0.0.1:7070")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *saveFlag != "" {
		cfg.Save.Path = *saveFlag
	}
	if *observerFlag != "" {
		cfg.Observer.Addr = *observerFlag
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	world := engine.NewWorld(engine.NewTimeProvider(), metrics)

	store, err := persistence.Open(cfg.Save.Backend, cfg.Save.Path, cfg.Save.World)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	persister := persistence.NewPersister(store, metrics)
	loadWorld(ctx, cfg, world, persister)

	// Long-lived subsystems
	sound := audio.NewSoundManager()
	spectate := observer.NewServer(metrics)
	hub := service.NewHub()
	_ = hub.Register(sound)
	_ = hub.Register(spectate)
	if err := hub.InitAll(cfg.AudioConfig(os.Getenv), observer.Options{Addr: cfg.Observer.Addr}); err != nil {
		log.Printf("services init: %v", err)
	} else if err := hub.StartAll(); err != nil {
		log.Printf("services start: %v (continuing without audio and spectators)", err)
	}
	defer hub.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	a, err := newApp(cfg, world, screen, sound, spectate, persister)
	if err != nil {
		// Validated by config.Load, unreachable in practice
		log.Printf("keys: %v", err)
		return
	}
	defer a.shutdown(context.Background())

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	a.publish()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if a.handle(ctx, ev) {
				return
			}
		}
	}
}
