// Package gamedata provides the item and housing preset sheets used when
// building estates.
//
// Sheets live as JSON under the 'gamedata/' prefix of the storage bucket.
// Source parses them on first use and caches the snapshot for a configurable
// TTL; Data is the in-memory form and also serves as a fixed catalog.
package gamedata
