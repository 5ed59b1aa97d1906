package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/internal/api"
	"github.com/CARMI-Logistics/sarv-cli/internal/config"
)

var (
	loginServer string
	loginUser   string
	loginPass   string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the SARV backend",
	Long: `Authenticates with username and password and saves the session token
locally for future commands.

Example:
  sarv-cli login --server "http://10.0.0.5:8080" --username admin --password pass`,
	Run: func(cmd *cobra.Command, args []string) {
		loginServer = strings.TrimRight(loginServer, "/")

		fmt.Printf("Authenticating against %s as user '%s'...\n", loginServer, loginUser)

		session := newSession()
		client := api.New(loginServer, session, cliLogger())

		if _, err := client.Login(context.Background(), loginUser, loginPass); err != nil {
			log.Fatalf("Fatal: Login failed: %v", err)
		}

		// The token is already persisted by the session; keep the server
		// URL next to it so subsequent commands know where to connect.
		if err := config.SaveServerURL(loginServer); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Login successful. You can now run commands like 'sarv-cli cameras list'.")
	},
}

// logoutCmd clears the local credential and best-effort revokes it
// server-side. Never fails.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Run: func(cmd *cobra.Command, args []string) {
		session := newSession()
		if url := config.ServerURL(); url != "" {
			// Wiring the client registers the server-side revoke.
			api.New(url, session, cliLogger())
		}
		session.Logout()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVar(&loginServer, "server", "", "Backend base URL (e.g. http://192.168.1.50:8080)")
	loginCmd.Flags().StringVarP(&loginUser, "username", "u", "admin", "Username")
	loginCmd.Flags().StringVarP(&loginPass, "password", "p", "", "Password")

	_ = loginCmd.MarkFlagRequired("server")
	_ = loginCmd.MarkFlagRequired("password")
}
