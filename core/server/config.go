package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// WorldID is the world (server) id stamped on every land identity.
	WorldID int `mapstructure:"world_id" default:"67"`
	// Name is the world name attached to log entries.
	Name string `mapstructure:"name" default:"sapphire"`
}

// MaxWorldID is the largest world id that fits a land identity.
const MaxWorldID = 0xFFFF

// IsValidWorld checks if the configured world id fits a land identity.
func (c Config) IsValidWorld() bool {
	return c.WorldID > 0 && c.WorldID <= MaxWorldID
}
