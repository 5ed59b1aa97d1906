package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var notificationID int64

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "View and manage the notification feed",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the notification summary",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadNotificationSummary(context.Background())

		notifications := s.Notifications()
		if printJSON(notifications) {
			return
		}

		fmt.Printf("Unread: %d\n\n", s.UnreadCount())
		w := newTable()
		fmt.Fprintln(w, "ID\tSEVERITY\tTITLE\tMESSAGE\tREAD")
		fmt.Fprintln(w, "--\t--------\t-----\t-------\t----")
		for _, n := range notifications {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", n.ID, n.Severity, n.Title, n.Message, n.Read)
		}
		w.Flush()
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark a notification as read",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		ctx := context.Background()
		s.LoadNotificationSummary(ctx)
		s.MarkNotificationRead(ctx, notificationID)
		fmt.Printf("Unread: %d\n", s.UnreadCount())
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.MarkAllNotificationsRead(context.Background())
	},
}

var notificationsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a notification",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteNotification(context.Background(), notificationID)
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	notificationsCmd.AddCommand(notificationsDeleteCmd)

	for _, c := range []*cobra.Command{notificationsReadCmd, notificationsDeleteCmd} {
		c.Flags().Int64Var(&notificationID, "id", 0, "Notification ID")
		_ = c.MarkFlagRequired("id")
	}
}
