// Package endpoint provides the /health, /info and /version handlers.
package endpoint
