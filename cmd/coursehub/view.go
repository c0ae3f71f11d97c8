package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub"
	"github.com/avaldes/coursehub/pkg/export"
)

var viewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Read a course and record a view",
	Long: `Render a published course to stdout. Each invocation counts as one
viewer load: the course's view counter is incremented, exactly like a page
load (and a refresh) in a browser.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService()
		if err != nil {
			fatal("Failed to open catalog", err)
		}

		tracker := coursehub.NewTracker(service.Store(), slog.Default())
		c, err := tracker.RecordView(context.Background(), args[0])
		if errors.Is(err, coursehub.ErrCourseNotFound) {
			fmt.Fprintf(os.Stderr, "Course %q not found.\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to record view", err)
		}

		out, err := export.Markdown(c)
		if err != nil {
			fatal("Failed to render course", err)
		}
		os.Stdout.Write(out)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
