package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	locationID   int64
	locationName string
	locationDesc string
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage locations",
}

var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadLocations(context.Background())

		locations := s.Locations()
		if printJSON(locations) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tSYSTEM")
		fmt.Fprintln(w, "--\t----\t-----------\t------")
		for _, loc := range locations {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", loc.ID, loc.Name, loc.Description, loc.IsSystem)
		}
		w.Flush()
	},
}

var locationsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a location, or update one with --id",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		loc := models.Location{Name: locationName, Description: locationDesc}
		if msg := s.SaveLocation(context.Background(), locationID, loc); msg != "" {
			fmt.Printf("Error: %s\n", msg)
			os.Exit(1)
		}
	},
}

var locationsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a location (system locations are refused)",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteLocation(context.Background(), locationID)
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
	locationsCmd.AddCommand(locationsListCmd)
	locationsCmd.AddCommand(locationsSaveCmd)
	locationsCmd.AddCommand(locationsDeleteCmd)

	locationsSaveCmd.Flags().Int64Var(&locationID, "id", 0, "Location ID (omit to create)")
	locationsSaveCmd.Flags().StringVar(&locationName, "name", "", "Location name")
	locationsSaveCmd.Flags().StringVar(&locationDesc, "description", "", "Description")
	_ = locationsSaveCmd.MarkFlagRequired("name")

	locationsDeleteCmd.Flags().Int64Var(&locationID, "id", 0, "Location ID")
	_ = locationsDeleteCmd.MarkFlagRequired("id")
}
