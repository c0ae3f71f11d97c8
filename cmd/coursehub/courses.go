package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	coursesJSON   bool
	coursesSearch string
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the published courses in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService()
		if err != nil {
			fatal("Failed to open catalog", err)
		}

		courses, err := service.Search(context.Background(), coursesSearch)
		if err != nil {
			fatal("Failed to list courses", err)
		}

		if coursesJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(courses); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(courses) == 0 {
			fmt.Println("No courses found.")
			return
		}
		for _, c := range courses {
			fmt.Printf("%-24s %s by %s (%d min, %d views)\n", c.ID, c.Title, c.Author, c.EstimatedTime, c.Views)
		}
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.Flags().BoolVar(&coursesJSON, "json", false, "Output in JSON format")
	coursesCmd.Flags().StringVar(&coursesSearch, "search", "", "Filter by title/description substring")
}
