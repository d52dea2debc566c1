// Package housing manages player estates: lands grouped in wards of 60, the
// houses built on them and the containers holding their furnishings.
//
// Manager owns all housing state in memory and writes every change through
// store.Store before applying it. It performs no locking; Service wraps it
// with a single mutex and reports refusals to the acting character through
// the zone notifier.
//
// # Operations
//
//   - Estates: PurchaseLand, RelinquishLand, BuildEstate, DemolishEstate, RenameEstate, UpdateGreeting.
//   - Furnishings: PlaceItem, MoveItem, RemoveItem.
//   - Queries: QueryEstateInventory, QueryInteriorInventories, WardInfo, LandInfo, EstateGreeting.
//   - Maintenance: DecayPrices, Snapshot.
//
// # Failure Handling
//
// Store transactions are retried with linear backoff. When the last attempt
// fails, memory is left as it was and effects outside the manager, such as a
// currency debit or a carried item taken from a bag, are undone.
//
// # HTTP Endpoints
//
//   - GET /housing/wards : Lists loaded wards.
//   - GET /housing/wards/:territory/:ward : Lists the plots of a ward.
//   - GET /housing/lands/:territory/:ward/:land : Land and house.
//   - POST /housing/lands/:territory/:ward/:land/{purchase,relinquish,build,demolish}
//   - POST|PATCH|DELETE /housing/lands/:territory/:ward/:land/items : Furnishings.
//   - POST /housing/decay : Runs one price decay pass.
package housing
