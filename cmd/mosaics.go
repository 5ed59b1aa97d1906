package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	mosaicID      int64
	mosaicName    string
	mosaicLayout  string
	mosaicCameras string
)

var mosaicsCmd = &cobra.Command{
	Use:   "mosaics",
	Short: "Manage mosaics",
	Long:  `List, create, update and delete mosaics, and start or stop their stream processes.`,
}

var mosaicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mosaics",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadMosaics(context.Background())

		mosaics := s.Mosaics()
		if printJSON(mosaics) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tLAYOUT\tACTIVE\tCAMERAS")
		fmt.Fprintln(w, "--\t----\t------\t------\t-------")
		for _, m := range mosaics {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%d\n", m.ID, m.Name, m.Layout, m.Active, len(m.Cameras))
		}
		w.Flush()
	},
}

var mosaicsSaveCmd = &cobra.Command{
	Use:     "save",
	Short:   "Create a mosaic, or update one with --id",
	Example: `  sarv-cli mosaics save --name "Front" --layout 2x2 --cameras "1,2,3,4"`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()

		var ids []int64
		for _, part := range splitCSV(mosaicCameras) {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				fmt.Printf("Error: invalid camera id %q\n", part)
				os.Exit(1)
			}
			ids = append(ids, id)
		}

		req := models.SaveMosaicRequest{Name: mosaicName, Layout: mosaicLayout, CameraIDs: ids}
		if msg := s.SaveMosaic(context.Background(), mosaicID, req); msg != "" {
			fmt.Printf("Error: %s\n", msg)
			os.Exit(1)
		}
	},
}

var mosaicsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a mosaic",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteMosaic(context.Background(), mosaicID)
	},
}

var mosaicsStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mosaic stream process",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.StartMosaic(context.Background(), mosaicID)
	},
}

var mosaicsStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the mosaic stream process",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.StopMosaic(context.Background(), mosaicID)
	},
}

func init() {
	rootCmd.AddCommand(mosaicsCmd)
	mosaicsCmd.AddCommand(mosaicsListCmd)
	mosaicsCmd.AddCommand(mosaicsSaveCmd)
	mosaicsCmd.AddCommand(mosaicsDeleteCmd)
	mosaicsCmd.AddCommand(mosaicsStartCmd)
	mosaicsCmd.AddCommand(mosaicsStopCmd)

	mosaicsSaveCmd.Flags().Int64Var(&mosaicID, "id", 0, "Mosaic ID (omit to create)")
	mosaicsSaveCmd.Flags().StringVar(&mosaicName, "name", "", "Mosaic name")
	mosaicsSaveCmd.Flags().StringVar(&mosaicLayout, "layout", "2x2", "Grid layout")
	mosaicsSaveCmd.Flags().StringVar(&mosaicCameras, "cameras", "", "Comma separated camera IDs in position order")
	_ = mosaicsSaveCmd.MarkFlagRequired("name")

	for _, c := range []*cobra.Command{mosaicsDeleteCmd, mosaicsStartCmd, mosaicsStopCmd} {
		c.Flags().Int64Var(&mosaicID, "id", 0, "Mosaic ID")
		_ = c.MarkFlagRequired("id")
	}
}
