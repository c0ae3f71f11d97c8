package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub"
	"github.com/avaldes/coursehub/pkg/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a course as Markdown with frontmatter",
	Long:  `Export a published course without recording a view.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService()
		if err != nil {
			fatal("Failed to open catalog", err)
		}

		c, err := service.Course(context.Background(), args[0])
		if errors.Is(err, coursehub.ErrCourseNotFound) {
			fmt.Fprintf(os.Stderr, "Course %q not found.\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to load course", err)
		}

		out, err := export.Markdown(c)
		if err != nil {
			fatal("Failed to render course", err)
		}

		if exportOut == "" {
			os.Stdout.Write(out)
			return
		}
		if err := os.WriteFile(exportOut, out, 0644); err != nil {
			fatal("Failed to write export file", err)
		}
		fmt.Printf("Course '%s' exported to %s.\n", c.ID, exportOut)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file instead of stdout")
}
