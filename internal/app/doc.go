// Package app wires the student portfolio server together: configuration,
// logging, the sheet source, services, the Chi router with its middleware
// chain, and graceful startup and shutdown.
package app
