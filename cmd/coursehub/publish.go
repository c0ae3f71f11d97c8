package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub"
	"github.com/avaldes/coursehub/pkg/editor"
)

var keepDraft bool

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the current draft into the shared catalog",
	Long: `Validate the draft, freeze it into an immutable course record and append
it to the catalog. On success the draft file is removed; the session is
one-way and editing does not resume after publish.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDraft()

		path, err := catalogPath()
		if err != nil {
			fatal("Failed to resolve catalog", err)
		}
		store, err := coursehub.Init(path, coursehub.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open catalog", err)
		}

		session := editor.NewSession(store,
			editor.WithDraft(d),
			editor.WithLogger(slog.Default()),
		)

		published, err := session.Publish(context.Background())
		switch {
		case errors.Is(err, coursehub.ErrEmptyTitle):
			fmt.Fprintln(os.Stderr, "The draft has no title. Run: coursehub draft rename <title>")
			os.Exit(1)
		case errors.Is(err, coursehub.ErrEmptyContent):
			fmt.Fprintln(os.Stderr, "The draft has no content. Run: coursehub draft add <type>")
			os.Exit(1)
		case errors.Is(err, coursehub.ErrAuthorNotConfigured):
			fmt.Fprintln(os.Stderr, "No author configured. Run: coursehub author <name>, then publish again.")
			os.Exit(1)
		case err != nil:
			fatal("Failed to publish", err)
		}

		if !keepDraft {
			if err := os.Remove(draftFile); err != nil && !os.IsNotExist(err) {
				slog.Default().Warn("failed to remove draft file", "path", draftFile, "error", err)
			}
		}

		fmt.Printf("Published '%s' as %s (%d min read).\n", published.Title, published.ID, published.EstimatedTime)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&draftFile, "draft", ".coursehub-draft.json", "Draft working file")
	publishCmd.Flags().BoolVar(&keepDraft, "keep-draft", false, "Keep the draft file after publishing")
}
