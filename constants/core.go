package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 100
)

// Application identity
const (
	AppName = "garapon"

	// EnvPrefix is prepended to every environment override
	EnvPrefix = "GARAPON_"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "garapon.log"

	// Rotation limits for the debug log file
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 7
)
