// Package loader mounts self-contained features on the HTTP router.
//
// A feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers the housing and integrity features with a
// Manager and calls LoadAll once the middleware chain is in place. Names must
// be unique; disabled features are skipped and the first Load error aborts.
package loader
