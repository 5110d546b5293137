package constants

// Card Geometry (terminal cells)
const (
	// CardWidth is the width of a full card in cells
	CardWidth = 9

	// CardHeight is the height of a full card in rows
	CardHeight = 5

	// TableauStep is the visible strip of a covered tableau card, in rows
	TableauStep = 1

	// ShowStep is the horizontal fan offset of show cards, in cells
	ShowStep = 3
)

// Board Spacing (terminal cells)
const (
	// BoardMarginX is the left margin of the board
	BoardMarginX = 2

	// BoardMarginY is the top margin of the board
	BoardMarginY = 1

	// PileGap is the spacing between neighbouring piles
	PileGap = 1
)

// Menu Buttons
const (
	// ButtonX is the left edge of the menu button column
	ButtonX = 75

	// ButtonWidth is the width of each menu button
	ButtonWidth = 10

	// ButtonHeight is the height of each menu button
	ButtonHeight = 3

	// ButtonResetY is the top row of the RESET button
	ButtonResetY = 6

	// ButtonRulesY is the top row of the RULES button
	ButtonRulesY = 10

	// ButtonModeY is the top row of the MODE button
	ButtonModeY = 14
)

// Text Placement
const (
	// StatsX is the left edge of the frame statistics block
	StatsX = ButtonX

	// StatsY is the first row of the frame statistics block
	StatsY = 1

	// WinBannerY is the row of the win banner
	WinBannerY = 20

	// RulesX is the left edge of the rules text
	RulesX = 4

	// RulesY is the first row of the rules text
	RulesY = 2

	// WinBannerText is shown once every foundation is complete
	WinBannerText = "CONGRATULATIONS, YOU WON!"

	// RulesMissingText replaces the rules when the rules file cannot be read
	RulesMissingText = "Rules file not found."
)
