package main

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/engine"
	"github.com/lixenwraith/klondike/events"
	"github.com/lixenwraith/klondike/input"
	"github.com/lixenwraith/klondike/journal"
	"github.com/lixenwraith/klondike/render"
)

// app owns one frame of work: it applies intents to the game, dispatches queued
// events, and paints the board followed by the overlay
type app struct {
	game     *engine.Game
	router   *events.Router
	machine  *input.Machine
	painter  render.Painter
	board    *render.BoardRenderer
	overlay  *render.Overlay
	stats    render.FrameStats
	clock    engine.Clock
	repo     journal.Repository
	recorder *journal.Recorder
	logger   *slog.Logger

	rules     []string
	showRules bool

	tally        journal.Summary
	tallyPending bool
}

func newApp(game *engine.Game, router *events.Router, painter render.Painter, clock engine.Clock,
	repo journal.Repository, recorder *journal.Recorder, rules []string, logger *slog.Logger) *app {
	a := &app{
		game:         game,
		router:       router,
		machine:      input.NewMachine(),
		painter:      painter,
		board:        render.NewBoardRenderer(painter, game.Layout()),
		overlay:      render.NewOverlay(painter),
		clock:        clock,
		repo:         repo,
		recorder:     recorder,
		logger:       logger,
		rules:        rules,
		tallyPending: true,
	}
	router.Register(a)
	return a
}

// HandleEvent marks the journal tally stale after a deal finishes
func (a *app) HandleEvent(ev events.GameEvent) {
	a.tallyPending = true
}

// EventTypes returns the events that end a journal entry
func (a *app) EventTypes() []events.EventType {
	return []events.EventType{events.EventDealt, events.EventWon}
}

// handle applies one intent and reports whether the process should exit
func (a *app) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentResize:
		a.painter.Sync()
		a.game.Invalidate()
	case input.IntentReset:
		a.game.Reset()
	case input.IntentMode:
		a.game.ToggleMode()
	case input.IntentRules:
		a.showRules = !a.showRules
		if !a.showRules {
			a.game.Invalidate()
		}
	case input.IntentDraw:
		if !a.showRules && a.game.State() == engine.StateIdle {
			a.game.DrawStock()
		}
	case input.IntentAuto:
		if !a.showRules {
			a.game.AutoFoundation()
		}
	case input.IntentPointerDown:
		if !a.showRules {
			a.game.PointerDown(in.Point)
		}
	case input.IntentPointerMove:
		a.game.PointerMove(in.Point)
	case input.IntentPointerUp:
		a.game.PointerUp(in.Point)
	}
	return false
}

// frame runs one tick: win check, event dispatch, paint
func (a *app) frame() {
	start := a.clock.Now()

	a.game.CheckWin()
	a.router.DispatchAll()
	a.refreshTally()

	a.board.Render(a.game)
	for _, b := range a.machine.Buttons() {
		a.overlay.DrawButton(b.Label, b.Area)
	}
	a.overlay.DrawStats(&a.stats)
	a.overlay.DrawStatus(a.game.Mode().Capacity(), a.currentMoves(), a.tally.Won, a.tally.Played)
	if a.game.Won() {
		a.overlay.DrawWinBanner()
	}
	if a.showRules {
		a.overlay.DrawRules(a.rules)
	}
	a.painter.Show()

	now := a.clock.Now()
	a.stats.Record(now, now.Sub(start))
}

// currentMoves returns the committed moves of the deal in progress
func (a *app) currentMoves() int {
	if e := a.recorder.Current(); e != nil {
		return e.Moves
	}
	return 0
}

func (a *app) refreshTally() {
	if !a.tallyPending {
		return
	}
	a.tallyPending = false

	s, err := a.repo.Summary(context.Background())
	if err != nil {
		a.logger.Warn("journal summary failed", "error", err)
		return
	}
	a.tally = s
}

// loadRules reads the rules text, falling back to a one-line notice
func loadRules(path string, logger *slog.Logger) []string {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("rules unavailable", "path", path, "error", err)
		return []string{constants.RulesMissingText}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		logger.Warn("rules read failed", "path", path, "error", err)
	}
	return lines
}
