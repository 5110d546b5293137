package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
)

// FrameStats tracks frames per second over one-second windows and the duration
// of the most recent frame
type FrameStats struct {
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
	frameTime     time.Duration
}

// Record counts a frame that finished at now after taking elapsed
func (s *FrameStats) Record(now time.Time, elapsed time.Duration) {
	if s.lastFpsUpdate.IsZero() {
		s.lastFpsUpdate = now
	}
	s.frameCount++
	s.frameTime = elapsed
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}
}

// FPS returns the frame count of the last completed window
func (s *FrameStats) FPS() int { return s.currentFps }

// FrameTime returns the duration of the last recorded frame
func (s *FrameStats) FrameTime() time.Duration { return s.frameTime }

// Overlay draws everything that is not a pile: menu buttons, frame statistics,
// the win banner and the rules panel
type Overlay struct {
	painter Painter
}

func NewOverlay(p Painter) *Overlay {
	return &Overlay{painter: p}
}

// DrawButton paints a menu button with its label centred
func (o *Overlay) DrawButton(label string, area core.Area) {
	o.painter.FillArea(area, RgbButtonBg)
	style := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText).Bold(true)
	x := area.X + max(0, (area.Width-len(label))/2)
	o.painter.DrawText(core.Point{X: x, Y: area.Y + area.Height/2}, label, style)
}

// DrawStats paints FPS and frame time, one per line
func (o *Overlay) DrawStats(s *FrameStats) {
	style := tcell.StyleDefault.Background(RgbBoard).Foreground(RgbStatsText)
	ms := float64(s.FrameTime().Microseconds()) / 1000
	o.painter.DrawText(core.Point{X: constants.StatsX, Y: constants.StatsY}, fmt.Sprintf("FPS %4d  ", s.FPS()), style)
	o.painter.DrawText(core.Point{X: constants.StatsX, Y: constants.StatsY + 1}, fmt.Sprintf("%6.2f ms", ms), style)
}

// DrawStatus paints the draw mode, the moves of the open deal and the journal
// tally below the statistics
func (o *Overlay) DrawStatus(mode, moves, won, played int) {
	style := tcell.StyleDefault.Background(RgbBoard).Foreground(RgbStatsText)
	o.painter.DrawText(core.Point{X: constants.StatsX, Y: constants.StatsY + 3}, fmt.Sprintf("DRAW %d  MOVES %-4d", mode, moves), style)
	o.painter.DrawText(core.Point{X: constants.StatsX, Y: constants.StatsY + 4}, fmt.Sprintf("WON %d/%d   ", won, played), style)
}

// DrawWinBanner paints the congratulation line centred on the board
func (o *Overlay) DrawWinBanner() {
	w, _ := o.painter.Size()
	text := " " + constants.WinBannerText + " "
	x := max(0, (w-len([]rune(text)))/2)
	style := tcell.StyleDefault.Background(RgbBannerBg).Foreground(RgbBannerText).Bold(true)
	o.painter.DrawText(core.Point{X: x, Y: constants.WinBannerY}, text, style)
}

// DrawRules paints the rules panel; lines are clipped to the panel width
func (o *Overlay) DrawRules(lines []string) {
	w, h := o.painter.Size()
	panel := core.Area{
		X:      constants.RulesX,
		Y:      constants.RulesY,
		Width:  max(0, w-2*constants.RulesX),
		Height: max(0, h-2*constants.RulesY),
	}
	o.painter.FillArea(panel, RgbRulesBg)

	style := tcell.StyleDefault.Background(RgbRulesBg).Foreground(RgbRulesText)
	for i, line := range lines {
		if i >= panel.Height-2 {
			break
		}
		runes := []rune(line)
		if len(runes) > panel.Width-4 {
			runes = runes[:max(0, panel.Width-4)]
		}
		o.painter.DrawText(core.Point{X: panel.X + 2, Y: panel.Y + 1 + i}, string(runes), style)
	}
}
