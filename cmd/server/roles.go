package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/kinewatch-api/internal/schema"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Print the column resolved for each role of the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.cfg.Notion.HasCredential() {
			return fmt.Errorf("NOTION_API_KEY not configured")
		}

		roles, err := a.services.Article.ResolveRoles(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tCOLUMN\tTYPE\tSOURCE")
		for _, role := range schema.Roles {
			source := "default"
			if roles.Resolved(role) {
				source = "schema"
			}
			typ := string(roles.Type(role))
			if typ == "" {
				typ = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", role, roles.Name(role), typ, source)
		}
		return w.Flush()
	},
}
