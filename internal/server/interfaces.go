package server

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives
	// and the shutdown has completed.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
