package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aqfs-io/aqfs/internal/aqfs"
	"github.com/aqfs-io/aqfs/internal/utils"
)

var getCmd = &cobra.Command{
	Use:   "get <path> [output]",
	Short: "Download a file from the remote store",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newRemoteStore(cmd.Context())
		if err != nil {
			return err
		}

		file, err := findRemoteFile(cmd.Context(), store, args[0])
		if err != nil {
			return err
		}

		content, err := file.ReadAll(cmd.Context())
		if err != nil {
			return err
		}

		output := filepath.Base(args[0])
		if len(args) == 2 {
			output = args[1]
		}
		output, err = utils.ResolvePath(output)
		if err != nil {
			return err
		}
		if err := utils.EnsureParent(output); err != nil {
			return err
		}
		if err := os.WriteFile(output, content, 0o644); err != nil {
			return err
		}

		mtime := file.Meta().Mtime
		if err := os.Chtimes(output, mtime, mtime); err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	},
}

var putCmd = &cobra.Command{
	Use:   "put <file> [path]",
	Short: "Upload a local file to the remote store",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := utils.ResolvePath(args[0])
		if err != nil {
			return err
		}
		info, err := os.Stat(source)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", source)
		}
		content, err := os.ReadFile(source)
		if err != nil {
			return err
		}

		path := aqfs.NewPath(filepath.Base(source))
		if len(args) == 2 {
			path = aqfs.ParsePath(args[1])
		}

		store, err := newRemoteStore(cmd.Context())
		if err != nil {
			return err
		}
		file := aqfs.NewMemFile(aqfs.FileMeta{Path: path, Mtime: info.ModTime().UTC()}, content)
		if err := store.CreateFile(cmd.Context(), file); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Tombstone a file in the remote store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newRemoteStore(cmd.Context())
		if err != nil {
			return err
		}

		file, err := findRemoteFile(cmd.Context(), store, args[0])
		if err != nil {
			return err
		}
		return store.RemoveFile(cmd.Context(), file)
	},
}
