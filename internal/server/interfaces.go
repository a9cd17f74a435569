package server

// Server is the lifecycle of the application server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or the listener
	// fails, then shuts down gracefully.
	RunServer() error

	// Shutdown stops the server and waits for in-flight requests.
	Shutdown()
}
