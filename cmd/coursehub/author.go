package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author [name]",
	Short: "Show or configure the author profile",
	Long: `The author profile is set once and reused as the author of every
subsequent publish. Reconfiguring overwrites the previous name.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService()
		if err != nil {
			fatal("Failed to open catalog", err)
		}
		ctx := context.Background()

		if len(args) == 0 {
			profile, ok, err := service.AuthorProfile(ctx)
			if err != nil {
				fatal("Failed to load author profile", err)
			}
			if !ok {
				fmt.Println("No author configured. Run: coursehub author <name>")
				return
			}
			fmt.Println(profile.Name)
			return
		}

		if err := service.SetAuthor(ctx, args[0]); err != nil {
			fatal("Failed to save author profile", err)
		}
		fmt.Printf("Author set to %q.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(authorCmd)
}
