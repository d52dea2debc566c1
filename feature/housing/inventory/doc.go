// Package inventory models estate containers.
//
// Kind is a closed set of container kinds whose numeric values are the
// persisted container ids; the rules table classifies each one (carried,
// appearance, placed, storeroom) and pairs interior rooms with storerooms.
// Registry keys containers by packed land identity and provisions them per
// land at boot.
package inventory
