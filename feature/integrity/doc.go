// Package integrity provides health checks for the housing manager's dependencies.
//
// The housing manager refuses to boot when a ward is incomplete, and reads its
// catalog from gamedata sheets in object storage. These checks surface such
// problems before a restart does.
//
// # Checks Provided
//
//   - Structure: the bucket holds the gamedata/ and snapshots/ folders.
//   - GameData: Item.json and HousingPreset.json are present under gamedata/.
//   - Schema: every housing table exists with the columns of its GORM model.
//   - Wards: every ward holds exactly 60 land rows.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/gamedata : Runs gamedata check.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/wards : Runs ward check.
package integrity
