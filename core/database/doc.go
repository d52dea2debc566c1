// Package database handles world database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect establishes the connection and verifies it with a ping bounded by
// TimeoutSeconds. SQLite connections are pinned to a single pooled connection
// so that ":memory:" databases behave as one database.
//
// # Schema Inspection
//
// GetTableColumns returns the column definitions of a table. The Server
// Integrity Check compares them against the housing row models (land, house,
// houseiteminventory, landplaceditems, charaglobalitem).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "land")
package database
