package checks

import (
	"fmt"
	"strings"

	"housing-manager/core/database"
	"housing-manager/feature/housing/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the housing tables with their models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies every housing table against its GORM model.
// Column names are compared case-insensitively; types only when the model pins one.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		actual, err := database.GetTableColumns(db, table)
		if err == nil && len(actual) == 0 {
			err = fmt.Errorf("table %s does not exist", table)
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		columns := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			columns[col.Field] = col
		}

		tbl := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			name := strings.ToLower(field.DBName)
			col, ok := columns[name]
			if !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
				tbl.Status = "error"
				continue
			}
			if want := strings.ToLower(field.TagSettings["TYPE"]); want != "" && !strings.Contains(col.Type, want) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", field.DBName, want, col.Type))
				tbl.Status = "error"
			}
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
