package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch the catalog for publishes and view changes",
	Long: `Stream changes other CourseHub processes make to the shared catalog.
The optional pattern is a glob matched against course ids, e.g. 'css-*'.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		service, err := openService()
		if err != nil {
			fatal("Failed to open catalog", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to watch catalog", err)
		}

		fmt.Println("Watching catalog (Ctrl-C to stop)...")
		for event := range events {
			ts := time.Unix(event.Timestamp, 0).Format(time.TimeOnly)
			fmt.Printf("%s %-8s %s\n", ts, event.Type, event.CourseID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
