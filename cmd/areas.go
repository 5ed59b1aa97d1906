package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	areaID         int64
	areaName       string
	areaDesc       string
	areaLocationID int64
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Manage areas",
}

var areasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas with their location",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadAreas(context.Background())

		areas := s.Areas()
		if printJSON(areas) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tLOCATION\tDESCRIPTION")
		fmt.Fprintln(w, "--\t----\t--------\t-----------")
		for _, a := range areas {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Name, a.LocationName, a.Description)
		}
		w.Flush()
	},
}

var areasSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create an area, or update one with --id",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		area := models.Area{Name: areaName, LocationID: areaLocationID, Description: areaDesc}
		if msg := s.SaveArea(context.Background(), areaID, area); msg != "" {
			fmt.Printf("Error: %s\n", msg)
			os.Exit(1)
		}
	},
}

var areasDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an area",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteArea(context.Background(), areaID)
	},
}

func init() {
	rootCmd.AddCommand(areasCmd)
	areasCmd.AddCommand(areasListCmd)
	areasCmd.AddCommand(areasSaveCmd)
	areasCmd.AddCommand(areasDeleteCmd)

	areasSaveCmd.Flags().Int64Var(&areaID, "id", 0, "Area ID (omit to create)")
	areasSaveCmd.Flags().StringVar(&areaName, "name", "", "Area name")
	areasSaveCmd.Flags().Int64Var(&areaLocationID, "location-id", 0, "Parent location ID")
	areasSaveCmd.Flags().StringVar(&areaDesc, "description", "", "Description")
	_ = areasSaveCmd.MarkFlagRequired("name")
	_ = areasSaveCmd.MarkFlagRequired("location-id")

	areasDeleteCmd.Flags().Int64Var(&areaID, "id", 0, "Area ID")
	_ = areasDeleteCmd.MarkFlagRequired("id")
}
