package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. ShutdownTimeout bounds graceful
// shutdown once a termination signal arrives.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout limits how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
