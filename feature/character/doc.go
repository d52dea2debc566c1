// Package character is the in-process stand-in for the character
// subsystem: carried bags and currency. Housing consumes it through narrow
// interfaces so a networked implementation can replace it.
//
// The registry starts with empty wallets and bags and nothing outside this
// process can fund or stock them. A server running on it only completes
// purchases of zero-price plots and has no carried items to place.
package character
