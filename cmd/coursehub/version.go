package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the coursehub version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(coursehub.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
