package checks

import (
	"context"
	"testing"

	"housing-manager/core/database"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"
	"housing-manager/feature/housing/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db := openDB(t)
	require.NoError(t, store.New(db).Migrate(context.Background()))

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Errors)
	assert.Len(t, report.Tables, len(models.All()))
	for name, tbl := range report.Tables {
		assert.Equal(t, "ok", tbl.Status, name)
	}
}

func TestCheckSchema_Drift(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Exec("CREATE TABLE land (LandSetId integer, LandId integer, Size integer)").Error)
	require.NoError(t, db.Exec(`CREATE TABLE house (HouseId integer, LandSetId integer, BuildTime integer,
		HouseName text, Welcome integer, Comment varchar(193), Endorsements integer)`).Error)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	lands := report.Tables["land"]
	assert.Equal(t, "error", lands.Status)
	assert.ElementsMatch(t, []string{"Type", "Status", "LandPrice", "UpdateTime", "OwnerId", "HouseId"}, lands.MissingColumns)

	house := report.Tables["house"]
	assert.Equal(t, "error", house.Status)
	assert.Empty(t, house.MissingColumns)
	assert.Equal(t, []string{"HouseName: expected varchar(32), got text"}, house.TypeMismatches)

	// the three inventory tables were never created
	assert.Len(t, report.Errors, 3)
}

func TestCheckWards(t *testing.T) {
	db := openDB(t)
	s := store.New(db)
	require.NoError(t, s.Migrate(context.Background()))

	full := land.NewSetID(339, 1)
	partial := land.NewSetID(339, 2)
	var rows []models.Land
	for i := 0; i < land.WardSize; i++ {
		rows = append(rows, models.Land{LandSetID: uint32(full), LandID: uint16(i)})
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, models.Land{LandSetID: uint32(partial), LandID: uint16(i)})
	}
	_, err := s.SeedLands(context.Background(), rows)
	require.NoError(t, err)

	report, err := CheckWards(db)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Wards)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, []WardCount{{LandSetID: uint32(partial), Territory: 339, Ward: 2, Lands: 12}}, report.Incomplete)
}

func TestCheckWards_Empty(t *testing.T) {
	db := openDB(t)
	require.NoError(t, store.New(db).Migrate(context.Background()))

	report, err := CheckWards(db)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Wards)
	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.Incomplete)
}
