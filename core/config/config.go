package config

import (
	"fmt"
	"reflect"
	"strings"

	"housing-manager/core/database"
	"housing-manager/core/logger"
	"housing-manager/core/server"
	"housing-manager/core/storage"
	"housing-manager/feature/housing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket holding gamedata and snapshots.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Housing holds the pricing, decay and persistence settings of the housing manager.
	Housing housing.Config `mapstructure:"housing"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the housing manager cannot run with.
func (c *Config) Validate() error {
	if !c.Server.IsValidWorld() {
		return fmt.Errorf("server.world_id %d is out of range", c.Server.WorldID)
	}
	if c.Housing.StoreRetries < 0 {
		return fmt.Errorf("housing.store_retries must not be negative")
	}
	if c.Housing.FloorPercent < 0 || c.Housing.FloorPercent > 100 {
		return fmt.Errorf("housing.floor_percent %d is not a percentage", c.Housing.FloorPercent)
	}
	if c.Housing.PriceCottage > c.Housing.PriceHouse || c.Housing.PriceHouse > c.Housing.PriceMansion {
		return fmt.Errorf("housing prices must grow with size")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
