// Package server runs the HTTP API and shuts it down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
