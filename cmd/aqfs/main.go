package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aqfs-io/aqfs/internal/aqfs"
	"github.com/aqfs-io/aqfs/internal/remote"
	"github.com/aqfs-io/aqfs/internal/version"
)

var red = color.New(color.FgHiRed, color.Bold).SprintFunc()

var rootCmd = &cobra.Command{
	Use:          "aqfs",
	Short:        "Journaled file storage over an S3-compatible object store",
	Version:      version.Detailed(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("bucket", "b", "aqfs", "bucket holding the journal")
	rootCmd.PersistentFlags().String("region", "us-east-1", "bucket region")
	rootCmd.PersistentFlags().String("endpoint", "http://localhost:9000", "S3-compatible endpoint, empty for AWS")
	rootCmd.AddCommand(lsCmd, getCmd, putCmd, rmCmd, syncCmd, versionCmd)
}

func main() {
	level := slog.LevelInfo
	if os.Getenv("AQFS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	// .env is optional; credentials usually arrive through AQFS_* vars.
	_ = godotenv.Load()

	viper.SetEnvPrefix("AQFS")
	viper.AutomaticEnv()

	for _, flag := range []string{"bucket", "region", "endpoint"} {
		if err := viper.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func newRemoteStore(ctx context.Context) (*remote.Store, error) {
	cfg := &remote.Config{
		Bucket:    viper.GetString("bucket"),
		Region:    viper.GetString("region"),
		AccessKey: viper.GetString("access_key"),
		SecretKey: viper.GetString("secret_key"),
		Endpoint:  viper.GetString("endpoint"),
	}
	client, err := remote.NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return remote.NewStore(client), nil
}

func findRemoteFile(ctx context.Context, store *remote.Store, path string) (*remote.File, error) {
	want := aqfs.ParsePath(path)
	files, err := store.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Meta().Path.Equal(want) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no such file: %s", want)
}
