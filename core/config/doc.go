// Package config provides configuration management for the housing manager.
//
// Settings come from environment variables, optionally loaded from a .env
// file, with defaults taken from the `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and the world id stamped on land identities
//   - Database: MySQL (or sqlite) connection details
//   - Storage: S3/MinIO credentials and the gamedata/snapshot bucket
//   - Log: Logging level and format
//   - Housing: store retries, price decay and list prices per size
//
// Nested keys map to upper-case variables joined by underscores, so
// housing.decay_percent is read from HOUSING_DECAY_PERCENT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Housing.PriceMansion)
package config
