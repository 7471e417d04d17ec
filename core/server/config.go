// Package server holds the HTTP server configuration.
//
// The application entry point owns the server lifecycle; this package
// only defines the settings it reads, so that core/config can embed them
// as a section.
package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication.
	ApiKey string `mapstructure:"api_key" default:""`
}
