// Package store is the housing persistence adapter.
//
// Store is consumed by the housing manager; GormStore implements it on top of
// GORM so the same code runs against the MySQL world database in production
// and an in-memory SQLite database in tests. Every multi-row mutation is meant
// to run inside Atomic.
package store
