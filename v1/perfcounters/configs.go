package perfcounters

// Config holds the settings for the counter registry and its publishing
// service.
type Config struct {
	// SocketPath is the filesystem path of the unix stream socket the
	// publishing service listens on. Empty means publishing is disabled;
	// counters are still collected.
	SocketPath string `yaml:"socket_path" envconfig:"PERF_COUNTERS_SOCKET_PATH"`

	// Logger is an optional logger from std/v1/logger. If provided, it is
	// used to report environmental failures of the publishing service.
	Logger Logger

	// Observer is an optional observability hook; every served snapshot is
	// reported to it.
	Observer Observer
}
