// Package land holds land identities and the Land Cache.
//
// A land is addressed by Identity {world, territory, ward, plot}, which packs
// losslessly into a uint64 for map keys and persisted rows. Wards are keyed by
// SetID (territory<<16 | ward) and always hold exactly WardSize lands; Load
// refuses any other shape so that startup fails instead of silently running
// on a truncated ward.
package land
