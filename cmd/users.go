package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

var (
	userID       int64
	userName     string
	userEmail    string
	userPassword string
	userRole     string
	userInactive bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadUsers(context.Background())

		users := s.Users()
		if printJSON(users) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tACTIVE")
		fmt.Fprintln(w, "--\t--------\t-----\t----\t------")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.Role, u.Active)
		}
		w.Flush()
	},
}

var usersSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a user, or update one with --id",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		req := models.SaveUserRequest{
			Username: userName,
			Email:    userEmail,
			Password: userPassword,
			Role:     userRole,
			Active:   !userInactive,
		}
		if !s.SaveUser(context.Background(), userID, req) {
			os.Exit(1)
		}
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteUser(context.Background(), userID)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersSaveCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	usersSaveCmd.Flags().Int64Var(&userID, "id", 0, "User ID (omit to create)")
	usersSaveCmd.Flags().StringVar(&userName, "username", "", "Username")
	usersSaveCmd.Flags().StringVar(&userEmail, "email", "", "Email")
	usersSaveCmd.Flags().StringVar(&userPassword, "password", "", "Password (empty keeps current on update)")
	usersSaveCmd.Flags().StringVar(&userRole, "role", "viewer", "Role name")
	usersSaveCmd.Flags().BoolVar(&userInactive, "inactive", false, "Create deactivated")
	_ = usersSaveCmd.MarkFlagRequired("username")
	_ = usersSaveCmd.MarkFlagRequired("email")

	usersDeleteCmd.Flags().Int64Var(&userID, "id", 0, "User ID")
	_ = usersDeleteCmd.MarkFlagRequired("id")
}
