// Package cache provides a small TTL cache with stampede protection.
//
// Values are keyed by string and rebuilt lazily once they expire. Concurrent
// misses for the same key are collapsed through singleflight so an expensive
// build (for example downloading and parsing gamedata JSON from object
// storage) runs once.
//
// # Usage
//
//	presets := cache.New[map[uint32]Preset](5 * time.Minute)
//	v, err := presets.Get(ctx, "gamedata/HousingPreset.json", loadPresets)
package cache
