package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// watchCmd loads everything and keeps the caches warm with both background
// pollers until interrupted, printing feedback as it arrives.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow camera status and notifications until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		ctx := context.Background()

		s.LoadAll(ctx)

		statuses := s.Statuses()
		online := 0
		for _, st := range statuses {
			if st == models.StatusOnline {
				online++
			}
		}
		fmt.Printf("Watching %d cameras (%d online), %d unread notifications. Ctrl-C to stop.\n",
			len(statuses), online, s.UnreadCount())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		s.StopAll()
		fmt.Println("Stopped.")
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
