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
	roleID     int64
	roleName   string
	roleDesc   string
	roleGrants []string
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and permissions",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles with their permission sets",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.LoadRoles(context.Background())

		roles := s.Roles()
		if printJSON(roles) {
			return
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSYSTEM\tPERMISSIONS")
		fmt.Fprintln(w, "--\t----\t------\t-----------")
		for _, r := range roles {
			var perms []string
			for _, p := range r.Permissions {
				perms = append(perms, p.Module+":"+permFlags(p))
			}
			fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", r.ID, r.Name, r.IsSystem, strings.Join(perms, " "))
		}
		w.Flush()
	},
}

var rolesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a role, or update one with --id",
	Long: `Grants are given as module:flags where flags is any of v(iew),
c(reate), e(dit), d(elete).`,
	Example: `  sarv-cli roles save --name operator --grant cameras:vce --grant mosaics:v`,
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()

		var perms []models.Permission
		for _, g := range roleGrants {
			p, err := parseGrant(g)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			perms = append(perms, p)
		}

		req := models.SaveRoleRequest{Name: roleName, Description: roleDesc, Permissions: perms}
		if !s.SaveRole(context.Background(), roleID, req) {
			os.Exit(1)
		}
	},
}

var rolesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a role (system roles are refused)",
	Run: func(cmd *cobra.Command, args []string) {
		s := setup()
		s.DeleteRole(context.Background(), roleID)
	},
}

func permFlags(p models.Permission) string {
	var b strings.Builder
	if p.CanView {
		b.WriteByte('v')
	}
	if p.CanCreate {
		b.WriteByte('c')
	}
	if p.CanEdit {
		b.WriteByte('e')
	}
	if p.CanDelete {
		b.WriteByte('d')
	}
	return b.String()
}

func parseGrant(g string) (models.Permission, error) {
	module, flags, ok := strings.Cut(g, ":")
	if !ok || module == "" {
		return models.Permission{}, fmt.Errorf("invalid grant %q, want module:flags", g)
	}
	p := models.Permission{Module: module}
	for _, f := range flags {
		switch f {
		case 'v':
			p.CanView = true
		case 'c':
			p.CanCreate = true
		case 'e':
			p.CanEdit = true
		case 'd':
			p.CanDelete = true
		default:
			return models.Permission{}, fmt.Errorf("invalid grant flag %q in %q", string(f), g)
		}
	}
	return p, nil
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(rolesListCmd)
	rolesCmd.AddCommand(rolesSaveCmd)
	rolesCmd.AddCommand(rolesDeleteCmd)

	rolesSaveCmd.Flags().Int64Var(&roleID, "id", 0, "Role ID (omit to create)")
	rolesSaveCmd.Flags().StringVar(&roleName, "name", "", "Role name")
	rolesSaveCmd.Flags().StringVar(&roleDesc, "description", "", "Description")
	rolesSaveCmd.Flags().StringArrayVar(&roleGrants, "grant", nil, "module:flags permission grant (repeatable)")
	_ = rolesSaveCmd.MarkFlagRequired("name")

	rolesDeleteCmd.Flags().Int64Var(&roleID, "id", 0, "Role ID")
	_ = rolesDeleteCmd.MarkFlagRequired("id")
}
