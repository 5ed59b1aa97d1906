package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/internal/api"
	"github.com/CARMI-Logistics/sarv-cli/internal/config"
	"github.com/CARMI-Logistics/sarv-cli/internal/logger"
	"github.com/CARMI-Logistics/sarv-cli/internal/store"
	"github.com/CARMI-Logistics/sarv-cli/internal/toast"
)

var cfgFile string
var jsonOutput bool
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sarv-cli",
	Short: "A CLI for the SARV video surveillance platform",
	Long: `Manage cameras, locations, areas, mosaics, users, roles, captures,
notifications and share links on a SARV backend.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sarv-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func cliLogger() zerolog.Logger {
	lvl := config.LogLevel()
	if verbose {
		lvl = "debug"
	}
	return logger.New(lvl, true)
}

// newSession builds the session from the persisted credential. Shared by
// every command; login builds its own to allow an anonymous start.
func newSession() *api.Session {
	return api.NewSession(api.NewBearerCredentials(config.SessionStore{}), func() {
		fmt.Println("Session ended. Run 'sarv-cli login' to sign in again.")
	}, cliLogger())
}

// setup wires session -> client -> toasts -> store for an authenticated
// command, exiting when no credential is stored.
func setup() *store.Store {
	baseURL := config.ServerURL()
	session := newSession()
	if baseURL == "" || !session.IsAuthenticated() {
		fmt.Println("Error: Not logged in. Please run 'sarv-cli login' first.")
		os.Exit(1)
	}

	log := cliLogger()
	client := api.New(baseURL, session, log)
	toasts := toast.New()
	toasts.SetSink(printToast)
	return store.New(client, toasts, log)
}
