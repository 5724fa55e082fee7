package server

// Server defines the lifecycle of the API server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
