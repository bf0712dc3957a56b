package configs

// HTTP defines configuration for the HTTP server that serves the liveness
// probe, metrics and the admin API.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"10000"`
}
