package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	cameraID        int64
	cameraName      string
	cameraHost      string
	cameraPort      int64
	cameraUser      string
	cameraPass      string
	cameraPath      string
	cameraProtocol  string
	cameraLocation  string
	cameraArea      string
	cameraDisabled  bool
	cameraNoRecord  bool
	filterSearch    string
	filterLocations string
	filterAreas     string
	filterAll       bool
)

// Parent Command
var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Manage cameras",
	Long:  `List, create, update and delete cameras, trigger discovery sync, or check stream liveness.`,
}

var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cameras (filtered)",
	Example: `  sarv-cli cameras list --search lobby
  sarv-cli cameras list --locations "HQ,Warehouse" --all`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		ctx := context.Background()
		s.LoadCameras(ctx)

		s.SetSearch(filterSearch)
		s.SetLocationFilter(splitCSV(filterLocations))
		s.SetAreaFilter(splitCSV(filterAreas))
		if filterAll {
			// Show disabled and non-recording cameras too.
			s.SetEnabledFilter(false)
			s.SetRecordingFilter(false)
		}

		cameras := s.FilteredCameras()
		if printJSON(cameras) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tHOST\tLOCATION\tAREA\tENABLED\tRECORD")
		fmt.Fprintln(w, "--\t----\t----\t--------\t----\t-------\t------")
		for _, cam := range cameras {
			fmt.Fprintf(w, "%d\t%s\t%s:%d\t%s\t%s\t%t\t%t\n",
				cam.ID, cam.Name, cam.Host, cam.Port, cam.Location, cam.Area, cam.Enabled, cam.Record)
		}
		w.Flush()
	},
}

var camerasSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a camera, or update one with --id",
	Example: `  sarv-cli cameras save --name "Cam1" --host 10.0.0.5 --location HQ --area Entrance
  sarv-cli cameras save --id 3 --name "Cam1" --host 10.0.0.5 --disabled`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		cam := models.Camera{
			Name:     cameraName,
			Host:     cameraHost,
			Port:     cameraPort,
			Username: cameraUser,
			Password: cameraPass,
			Path:     cameraPath,
			Protocol: cameraProtocol,
			Enabled:  !cameraDisabled,
			Record:   !cameraNoRecord,
			Location: cameraLocation,
			Area:     cameraArea,
		}
		if !s.SaveCamera(context.Background(), cameraID, cam) {
			os.Exit(1)
		}
	},
}

var camerasDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a camera",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteCamera(context.Background(), cameraID)
	},
}

var camerasSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Trigger the backend camera discovery job",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.SyncCameras(context.Background())
	},
}

var camerasStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-camera stream liveness",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		ctx := context.Background()
		s.LoadCameras(ctx)
		s.LoadStatuses(ctx)

		statuses := s.Statuses()
		if printJSON(statuses) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSTATUS")
		fmt.Fprintln(w, "--\t----\t------")
		for _, cam := range s.Cameras() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", cam.ID, cam.Name, statuses[cam.ID])
		}
		w.Flush()
	},
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(camerasCmd)

	camerasCmd.AddCommand(camerasListCmd)
	camerasCmd.AddCommand(camerasSaveCmd)
	camerasCmd.AddCommand(camerasDeleteCmd)
	camerasCmd.AddCommand(camerasSyncCmd)
	camerasCmd.AddCommand(camerasStatusCmd)

	camerasListCmd.Flags().StringVar(&filterSearch, "search", "", "Substring match on name, host, location or area")
	camerasListCmd.Flags().StringVar(&filterLocations, "locations", "", "Comma separated location names")
	camerasListCmd.Flags().StringVar(&filterAreas, "areas", "", "Comma separated area names")
	camerasListCmd.Flags().BoolVar(&filterAll, "all", false, "Include disabled and non-recording cameras")

	camerasSaveCmd.Flags().Int64Var(&cameraID, "id", 0, "Camera ID (omit to create)")
	camerasSaveCmd.Flags().StringVar(&cameraName, "name", "", "Camera name")
	camerasSaveCmd.Flags().StringVar(&cameraHost, "host", "", "Camera host")
	camerasSaveCmd.Flags().Int64Var(&cameraPort, "port", 554, "RTSP port")
	camerasSaveCmd.Flags().StringVar(&cameraUser, "username", "", "Stream username")
	camerasSaveCmd.Flags().StringVar(&cameraPass, "password", "", "Stream password")
	camerasSaveCmd.Flags().StringVar(&cameraPath, "path", "/defaultPrimary?streamType=m", "Stream path")
	camerasSaveCmd.Flags().StringVar(&cameraProtocol, "protocol", "rtsp", "Stream protocol")
	camerasSaveCmd.Flags().StringVar(&cameraLocation, "location", "", "Location name")
	camerasSaveCmd.Flags().StringVar(&cameraArea, "area", "", "Area name")
	camerasSaveCmd.Flags().BoolVar(&cameraDisabled, "disabled", false, "Create disabled")
	camerasSaveCmd.Flags().BoolVar(&cameraNoRecord, "no-record", false, "Do not record")
	_ = camerasSaveCmd.MarkFlagRequired("name")
	_ = camerasSaveCmd.MarkFlagRequired("host")

	camerasDeleteCmd.Flags().Int64Var(&cameraID, "id", 0, "Camera ID")
	_ = camerasDeleteCmd.MarkFlagRequired("id")
}
