package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	captureID       int64
	captureCameraID int64
)

var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "Manage screenshots and recordings",
}

var capturesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List captures",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadCaptures(context.Background())

		captures := s.Captures()
		if printJSON(captures) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tCAMERA\tTYPE\tFILE\tSIZE")
		fmt.Fprintln(w, "--\t------\t----\t----\t----")
		for _, c := range captures {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.CameraName, c.CaptureType, c.FilePath, c.FileSize)
		}
		w.Flush()
	},
}

var capturesScreenshotCmd = &cobra.Command{
	Use:     "screenshot",
	Short:   "Take a screenshot from a camera",
	Example: `  sarv-cli captures screenshot --camera-id 3`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.TakeScreenshot(context.Background(), captureCameraID)
	},
}

var capturesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a capture",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteCapture(context.Background(), captureID)
	},
}

var capturesThumbnailsCmd = &cobra.Command{
	Use:   "thumbnails",
	Short: "Show or toggle automatic thumbnail generation",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		ctx := context.Background()
		toggle, _ := cmd.Flags().GetBool("toggle")
		if toggle {
			s.ToggleThumbnails(ctx)
			return
		}
		s.LoadThumbnailSetting(ctx)
		fmt.Printf("Thumbnails enabled: %t\n", s.ThumbnailsEnabled())
	},
}

func init() {
	rootCmd.AddCommand(capturesCmd)
	capturesCmd.AddCommand(capturesListCmd)
	capturesCmd.AddCommand(capturesScreenshotCmd)
	capturesCmd.AddCommand(capturesDeleteCmd)
	capturesCmd.AddCommand(capturesThumbnailsCmd)

	capturesScreenshotCmd.Flags().Int64Var(&captureCameraID, "camera-id", 0, "Camera ID")
	_ = capturesScreenshotCmd.MarkFlagRequired("camera-id")

	capturesDeleteCmd.Flags().Int64Var(&captureID, "id", 0, "Capture ID")
	_ = capturesDeleteCmd.MarkFlagRequired("id")

	capturesThumbnailsCmd.Flags().Bool("toggle", false, "Flip the setting instead of showing it")
}
