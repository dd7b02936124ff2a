package metrics

// Config holds the settings for the metrics exposition server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server,
	// e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached to every exported metric as a constant
	// "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors additionally registers the standard Go,
	// process, and build-info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}
