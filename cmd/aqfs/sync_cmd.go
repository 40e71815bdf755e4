package main

import (
	"github.com/spf13/cobra"

	"github.com/aqfs-io/aqfs/internal/localfs"
	"github.com/aqfs-io/aqfs/internal/remote"
	"github.com/aqfs-io/aqfs/internal/syncer"
	"github.com/aqfs-io/aqfs/internal/utils"
)

var syncCmd = &cobra.Command{
	Use:   "sync <dir>",
	Short: "Two-way copy between a local directory and the remote store",
	Long: `Two-way copy between a local directory and the remote store.

Every file on each side is copied to the other unconditionally; there is
no diffing, so repeated syncs keep appending journal segments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := utils.ResolvePath(args[0])
		if err != nil {
			return err
		}
		local, err := localfs.NewStorage(dir)
		if err != nil {
			return err
		}

		store, err := newRemoteStore(cmd.Context())
		if err != nil {
			return err
		}

		s := syncer.New[*localfs.File, *remote.File](local, store)
		return s.Sync(cmd.Context())
	},
}
