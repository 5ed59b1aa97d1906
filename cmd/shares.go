package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	shareID       int64
	shareMosaicID int64
	shareEmails   string
	shareHours    int64
	shareStart    string
	shareEnd      string
)

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "Manage mosaic share links",
}

var sharesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List share links",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadShares(context.Background())

		shares := s.Shares()
		if printJSON(shares) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tMOSAIC\tTOKEN\tEMAILS\tEXPIRES\tACTIVE")
		fmt.Fprintln(w, "--\t------\t-----\t------\t-------\t------")
		for _, sh := range shares {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
				sh.ID, sh.MosaicName, sh.Token, sh.Emails, sh.ExpiresAt, sh.Active)
		}
		w.Flush()
	},
}

var sharesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a share link for a mosaic",
	Example: `  sarv-cli shares create --mosaic-id 1 --emails "a@x.com,b@x.com" --hours 4
  sarv-cli shares create --mosaic-id 1 --emails a@x.com --hours 24 --from "08:00" --to "18:00"`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()

		req := models.CreateShareRequest{
			MosaicID:      shareMosaicID,
			Emails:        splitCSV(shareEmails),
			DurationHours: shareHours,
		}
		if shareStart != "" {
			req.ScheduleStart = &shareStart
		}
		if shareEnd != "" {
			req.ScheduleEnd = &shareEnd
		}

		if msg := s.CreateShare(context.Background(), req); msg != "" {
			fmt.Printf("Error: %s\n", msg)
			os.Exit(1)
		}
	},
}

var sharesToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Enable or disable a share link",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.ToggleShare(context.Background(), shareID)
	},
}

var sharesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a share link",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteShare(context.Background(), shareID)
	},
}

func init() {
	rootCmd.AddCommand(sharesCmd)
	sharesCmd.AddCommand(sharesListCmd)
	sharesCmd.AddCommand(sharesCreateCmd)
	sharesCmd.AddCommand(sharesToggleCmd)
	sharesCmd.AddCommand(sharesDeleteCmd)

	sharesCreateCmd.Flags().Int64Var(&shareMosaicID, "mosaic-id", 0, "Mosaic ID")
	sharesCreateCmd.Flags().StringVar(&shareEmails, "emails", "", "Comma separated recipient emails")
	sharesCreateCmd.Flags().Int64Var(&shareHours, "hours", 4, "Link lifetime in hours")
	sharesCreateCmd.Flags().StringVar(&shareStart, "from", "", "Optional daily window start (HH:MM)")
	sharesCreateCmd.Flags().StringVar(&shareEnd, "to", "", "Optional daily window end (HH:MM)")
	_ = sharesCreateCmd.MarkFlagRequired("mosaic-id")
	_ = sharesCreateCmd.MarkFlagRequired("emails")

	for _, c := range []*cobra.Command{sharesToggleCmd, sharesDeleteCmd} {
		c.Flags().Int64Var(&shareID, "id", 0, "Share ID")
		_ = c.MarkFlagRequired("id")
	}
}
