package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/core"
)

// Base palette
var (
	feltGreen   = RGB{0, 100, 40}
	cardWhite   = RGB{250, 250, 245}
	cardBlue    = RGB{30, 60, 160}
	bannerGold  = RGB{255, 215, 0}
	tokyoNight  = RGB{26, 27, 38}
	statsYellow = RGB{255, 255, 0}
)

// RGB color definitions for the board and its cards
var (
	RgbBoard       = feltGreen.Tcell()
	RgbPlaceholder = feltGreen.Blend(RGBWhite, 0.3).Tcell() // Empty pile outline

	RgbCardFace        = cardWhite.Tcell()
	RgbCardRed         = RGB{200, 20, 30}.Tcell() // Hearts, diamonds
	RgbCardBlack       = RGB{20, 20, 20}.Tcell()  // Clubs, spades
	RgbCardBack        = cardBlue.Tcell()
	RgbCardBackPattern = cardBlue.Blend(cardWhite, 0.45).Tcell() // Back hatch

	RgbButtonBg   = RGBBlack.Tcell()
	RgbButtonText = RGBWhite.Tcell()
	RgbStatsText  = statsYellow.Tcell() // FPS counter

	RgbBannerBg   = bannerGold.Tcell()
	RgbBannerText = RGBBlack.Tcell()

	RgbRulesBg   = tokyoNight.Tcell()
	RgbRulesText = tokyoNight.Blend(RGBWhite, 0.85).Tcell()
)

// SuitColor returns the foreground used for a card's rank and suit glyphs
func SuitColor(c *core.Card) tcell.Color {
	if c.Color() == core.Red {
		return RgbCardRed
	}
	return RgbCardBlack
}
