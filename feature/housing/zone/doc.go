// Package zone describes where housing requests come from and where their
// visible effects go.
//
// Context is a closed sum of Exterior (a ward) and Interior (an estate
// instance); both resolve to the same land.Identity for a given estate.
package zone
