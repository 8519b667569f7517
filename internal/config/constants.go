package config

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "cardforge"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "cardforge"
)
