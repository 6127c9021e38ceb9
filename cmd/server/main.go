// Package main implements the entry point for the taskdeck API server,
// which tracks per-user to-do tasks behind a token-based session layer.
package main

import (
	"context"
	"log"
)

// main is the entry point for the taskdeck-api server. It initializes
// configuration, logging, the database connection, and all application
// components, then starts the HTTP server and blocks until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}
