// Package server holds the HTTP server configuration and constants.
//
// The start command handles server startup; this package defines the
// configuration structure and valid values for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, and the world this
// process serves. WorldID is stamped on every land identity, so it must fit
// in 16 bits.
package server
