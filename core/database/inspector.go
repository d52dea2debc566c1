package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns returns the columns of tableName with lowercased names and
// types. A missing table yields no columns on sqlite and an error on MySQL.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if strings.ContainsAny(tableName, "`'\" ;") {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var (
		columns []ColumnInfo
		err     error
	)
	if db.Dialector.Name() == DriverSQLite {
		columns, err = sqliteColumns(db, tableName)
	} else {
		err = db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var rows []struct {
		Name      string
		Type      string
		Notnull   int
		DfltValue *string
		Pk        int
	}
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, r := range rows {
		col := ColumnInfo{Field: r.Name, Type: r.Type, Null: "YES", Default: r.DfltValue}
		if r.Notnull != 0 {
			col.Null = "NO"
		}
		if r.Pk != 0 {
			col.Key = "PRI"
		}
		columns = append(columns, col)
	}
	return columns, nil
}
