package cmd

import (
	"fmt"
	"os"

	"housing-manager/feature/housing/layout"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd inserts the land rows of a ward layout file.
var seedCmd = &cobra.Command{
	Use:   "seed [layout.yaml]",
	Short: "Seed ward lands from a YAML layout",
	Long:  `Creates every plot of every ward listed in the layout, for sale at the configured list price. Existing lands are left untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open layout: %w", err)
		}
		defer f.Close()

		l, err := layout.Parse(f)
		if err != nil {
			return err
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		rows := l.Rows(e.cfg.Housing.MaxPrice)

		if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
			e.logger.Info("Dry run, nothing written", zap.Int("lands", len(rows)))
			return nil
		}

		_, s, err := e.connect(cmd.Context())
		if err != nil {
			return err
		}
		inserted, err := s.SeedLands(cmd.Context(), rows)
		if err != nil {
			return err
		}
		e.logger.Info("Seeded lands",
			zap.Int("listed", len(rows)),
			zap.Int64("inserted", inserted),
			zap.Int64("existing", int64(len(rows))-inserted))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("dry-run", false, "Parse the layout without writing")
}
