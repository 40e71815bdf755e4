package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cyan = color.New(color.FgHiCyan).SprintFunc()

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List files reconstructed from the remote journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := newRemoteStore(cmd.Context())
		if err != nil {
			return err
		}

		files, err := store.ListFiles(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range files {
			meta := f.Meta()
			fmt.Printf("%s\t%s\n", cyan(meta.Path.String()), humanize.Time(meta.Mtime))
		}
		return nil
	},
}
