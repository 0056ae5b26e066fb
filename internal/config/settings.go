package config

// resolved values from CLI flags, config file and environment
var (
	Year     int      // season of the event
	Event    string   // meeting name, location or country
	Session  string   // session name, e.g. "Race"
	Drivers  []string // driver codes for the race replay
	Driver   string   // driver code for the lap replay
	CacheDir string   // directory of the provider response cache
	APIURL   string   // base URL of the telemetry provider
	Demo     bool     // use the synthetic demo provider
	LogFile  string   // log destination; empty means stderr
	LogLevel string   // zap level name
	StandAt  float64  // race time in seconds for the standings command
)
