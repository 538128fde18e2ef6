package main

import (
	"encoding/json"
	"fmt"

	"github.com/kinewatch-api/internal/models"
	"github.com/spf13/cobra"
)

var (
	flagSource     string
	flagAnatomical string
	flagContent    string
	flagCursor     string
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Fetch one page of the feed and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.cfg.Notion.HasCredential() {
			return fmt.Errorf("NOTION_API_KEY not configured")
		}

		req := models.NewFilterRequest(flagCursor, flagSource, flagAnatomical, flagContent)
		resp, err := a.services.Article.ListArticles(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("fetching articles: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	articlesCmd.Flags().StringVar(&flagSource, "source", "", "source (author) to filter on")
	articlesCmd.Flags().StringVar(&flagAnatomical, "tag-anatomique", "", "anatomical tag to filter on")
	articlesCmd.Flags().StringVar(&flagContent, "tag-contenu", "", "content tag to filter on")
	articlesCmd.Flags().StringVar(&flagCursor, "cursor", "", "pagination cursor from a previous page")
}
