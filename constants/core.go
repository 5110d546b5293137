package constants

import "time"

// Game Loop Timing
const (
	// FrameRate is the target number of frames per second
	FrameRate = 60

	// FrameUpdateInterval is the frame clock interval (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// InputChannelSize is the capacity of the channel between the event poller and the frame loop
	InputChannelSize = 256

	// EventQueueSize is the initial capacity of the per-tick game event queue
	EventQueueSize = 32
)

// Board Dimensions
const (
	// FoundationCount is the number of foundation piles
	FoundationCount = 4

	// TableauCount is the number of tableau columns
	TableauCount = 7

	// TableauDealCount is the number of cards dealt into the tableau
	TableauDealCount = TableauCount * (TableauCount + 1) / 2

	// SuitLength is the number of cards in one complete foundation
	SuitLength = 13
)

// Logging
const (
	// LogFileName is the debug log file inside the log directory
	LogFileName = "klondike.log"

	// MaxLogSize triggers rotation of the debug log (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)

// Journal
const (
	// SearchConnectTimeout bounds the Elasticsearch index check at startup
	SearchConnectTimeout = 5 * time.Second
)
