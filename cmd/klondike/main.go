package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/audio"
	"github.com/lixenwraith/klondike/config"
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/engine"
	"github.com/lixenwraith/klondike/events"
	"github.com/lixenwraith/klondike/journal"
	"github.com/lixenwraith/klondike/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logFile, logger := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}
	engine.SetLogger(logger)

	repo, err := openJournal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open journal: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	clock := engine.NewTimeProvider()
	queue := events.NewEventQueue()
	router := events.NewRouter(queue)
	layout := core.TerminalLayout()

	game := engine.NewGame(engine.GameConfig{
		Mode:   engine.DrawMode(cfg.DrawMode),
		Layout: layout,
		Seed:   cfg.Seed,
	}, queue)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Sound
	sound := audio.NewSoundManager(audioCfg)
	sound.SetLogger(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("continuing without audio", "error", err)
	} else {
		defer sound.Cleanup()
	}
	router.Register(sound)

	recorder := journal.NewRecorder(repo, clock)
	recorder.SetLogger(logger)
	router.Register(recorder)
	defer recorder.Close()

	a := newApp(game, router, render.NewScreenPainter(screen, layout), clock, repo, recorder,
		loadRules(cfg.RulesPath, logger), logger)

	run(screen, a, logger)
}

// run pumps terminal events into the app and ticks frames until quit
func run(screen tcell.Screen, a *app, logger *slog.Logger) {
	eventChan := make(chan tcell.Event, constants.InputChannelSize)
	// Input polling goroutine; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := a.machine.Process(ev)
			if intent == nil {
				continue
			}
			if a.handle(*intent) {
				logger.Info("quit")
				return
			}
		case <-frameTicker.C:
			a.frame()
		}
	}
}

// openJournal picks the local store and wraps it with the search mirror when configured
func openJournal(cfg *config.Config) (journal.Repository, error) {
	var base journal.Repository
	if cfg.JournalDB == "" {
		base = journal.NewMemoryRepository()
	} else {
		db, err := journal.NewSQLiteRepository(cfg.JournalDB)
		if err != nil {
			return nil, err
		}
		base = db
	}

	if cfg.SearchURL == "" {
		return base, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.SearchConnectTimeout)
	defer cancel()
	repo, err := journal.NewElasticsearchRepository(ctx, base, &journal.ElasticsearchConfig{
		URL:      cfg.SearchURL,
		Username: cfg.SearchUser,
		Password: cfg.SearchPassword,
		Index:    cfg.SearchIndex,
	})
	if err != nil {
		base.Close()
		return nil, err
	}
	return repo, nil
}
