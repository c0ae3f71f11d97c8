package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub"
	"github.com/avaldes/coursehub/pkg/catalog"
)

var (
	verbose     bool
	catalogFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coursehub",
	Short: "Author and browse courses in a shared local catalog",
	Long: `CourseHub assembles courses as ordered sequences of typed content blocks
(headings, paragraphs, code, images, video) and publishes them into a shared
catalog file that every CourseHub on the same machine can browse.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file (default $COURSEHUB_CATALOG or ~/.coursehub/catalog.json)")
}

// catalogPath resolves the shared catalog location: flag, then environment,
// then the per-user default.
func catalogPath() (string, error) {
	if catalogFlag != "" {
		return catalogFlag, nil
	}
	if env := os.Getenv("COURSEHUB_CATALOG"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".coursehub", "catalog.json"), nil
}

func openService() (*catalog.Service, error) {
	path, err := catalogPath()
	if err != nil {
		return nil, err
	}
	return coursehub.New(path, coursehub.WithLogger(slog.Default()))
}
