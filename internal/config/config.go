package config

import "time"

const (
	// Native canvas the track is fitted to before it is mapped onto terminal cells
	CanvasWidth  = 480.0
	CanvasHeight = 400.0
	CanvasMargin = 30.0

	// Terminal char aspect correction (chars are ~2:1 tall)
	AspectRatio = 0.5
	TargetFPS   = 30

	// Race replay
	StalenessThreshold = 5.0 // seconds between query time and nearest sample
	RaceInitialRate    = 5.0 // replay seconds per wall second
	RaceMinRate        = 0.5
	RaceMaxRate        = 20.0
	RaceRateStep       = 1.0
	RaceSeekStep       = 10.0 // seconds

	// Lap replay
	LapInitialRate = 2.0
	LapMinRate     = 0.5
	LapMaxRate     = 10.0
	LapRateStep    = 0.5
	LapPlayback    = 10.0 // replay seconds per lap, regardless of lap duration
	TrailLength    = 60   // samples drawn behind the car
	OutlineStride  = 3    // every n-th outline point is drawn

	// Presentation
	PauseBlink = 400 * time.Millisecond

	// Provider
	DefaultAPIURL   = "https://api.openf1.org/v1"
	DefaultCacheDir = "cache"
	CacheFileName   = "trackshift_http_cache.sqlite"
	HTTPTimeout     = 30 * time.Second
	DemoLaps        = 20
	DemoSeed        = 2025

	// Logging
	DefaultLogFile = "trackshift.log" // replay commands; the TUI owns the terminal

	// App
	AppName    = "TRACKSHIFT"
	AppVersion = "1.0"
)
