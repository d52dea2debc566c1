package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"housing-manager/feature/housing/land"

	"github.com/spf13/cobra"
)

// landsCmd prints the lands of one ward as stored in the database.
var landsCmd = &cobra.Command{
	Use:   "lands [territory] [ward]",
	Short: "List the lands of a ward",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		territory, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid territory %q: %w", args[0], err)
		}
		ward, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid ward %q: %w", args[1], err)
		}
		id := land.NewSetID(uint16(territory), uint16(ward))

		e, err := loadEnv()
		if err != nil {
			return err
		}
		_, s, err := e.connect(cmd.Context())
		if err != nil {
			return err
		}
		rows, err := s.QueryLands(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLOT\tSIZE\tSTATUS\tPRICE\tOWNER\tHOUSE\tNAME")
		found := 0
		for _, row := range rows {
			if land.SetID(row.LandSetID) != id {
				continue
			}
			entry := row.Entry()
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
				entry.LandID+1, entry.Size, entry.Status, entry.CurrentPrice, entry.OwnerID, entry.HouseID, entry.Name)
			found++
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if found != land.WardSize {
			return fmt.Errorf("ward %d of territory %d holds %d lands, want %d", ward, territory, found, land.WardSize)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(landsCmd)
}
