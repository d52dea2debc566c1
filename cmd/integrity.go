package cmd

import (
	"context"
	"fmt"
	"os"

	"housing-manager/core/database"
	"housing-manager/core/storage"
	"housing-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrity check selectors
const (
	checkStructure = 1 << iota
	checkGameData
	checkSchema
	checkWards
	checkAll = checkStructure | checkGameData | checkSchema | checkWards
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and the housing database",
	Long:  `Checks the bucket folders, the gamedata sheets, the housing schema and the ward layout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// gamedataCmd represents the integrity gamedata command
var gamedataCmd = &cobra.Command{
	Use:   "gamedata",
	Short: "Check gamedata sheets",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkGameData)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the housing tables against their models",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkSchema)
	},
}

// wardsCmd represents the integrity wards command
var wardsCmd = &cobra.Command{
	Use:   "wards",
	Short: "Check that every ward holds a full set of lands",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkWards)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, gamedataCmd, schemaCmd, wardsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, which int) {
	e, err := loadEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	logg := e.logger

	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// The database is optional for the storage checks
	var db *gorm.DB
	if which&(checkSchema|checkWards) != 0 {
		if conn, err := database.Connect(e.cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(client, e.cfg.Storage.Bucket, logg, db)

	if which&checkStructure != 0 {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if which == checkStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if which == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if which&checkGameData != 0 {
		logg.Info("Checking gamedata files...")
		missing, err := svc.CheckGameData(ctx)
		if err != nil {
			logg.Fatal("GameData check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("GameData files are present.")
		} else {
			logg.Warn("Missing gamedata files detected", zap.Strings("missing", missing))
		}
	}

	if which&checkSchema != 0 {
		logg.Info("Checking housing schema...")
		report, err := svc.CheckSchema()
		switch {
		case err != nil:
			logg.Error("Schema check failed", zap.Error(err))
		case report.Matched:
			logg.Info("Housing schema matches the models.")
		default:
			logg.Warn("Housing schema mismatches found")
			for table, tbl := range report.Tables {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, msg := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", msg))
			}
		}
	}

	if which&checkWards != 0 {
		logg.Info("Checking wards...")
		report, err := svc.CheckWards()
		switch {
		case err != nil:
			logg.Error("Ward check failed", zap.Error(err))
		case len(report.Incomplete) == 0:
			logg.Info("All wards are complete.", zap.Int("wards", report.Wards))
		default:
			for _, w := range report.Incomplete {
				logg.Warn("Incomplete ward",
					zap.Uint16("territory", w.Territory),
					zap.Uint16("ward", w.Ward),
					zap.Int64("lands", w.Lands))
			}
		}
	}
}
