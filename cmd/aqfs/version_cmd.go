package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aqfs-io/aqfs/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.AppName, version.Detailed())
	},
}
