package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"housing-manager/core/storage"
	"housing-manager/feature/housing"
	"housing-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd writes a compressed snapshot of every estate.
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export every estate to a zstd compressed JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := loadEnv()
		if err != nil {
			return err
		}
		_, s, err := e.connect(ctx)
		if err != nil {
			return err
		}
		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		mgr, err := e.boot(ctx, s, client)
		if err != nil {
			return err
		}

		snap := mgr.Snapshot()
		var buf bytes.Buffer
		if err := housing.WriteSnapshot(&buf, snap); err != nil {
			return err
		}
		if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		e.logger.Info("Snapshot written",
			zap.String("file", args[0]),
			zap.Int("estates", len(snap.Estates)),
			zap.Int("bytes", buf.Len()))

		if upload, _ := cmd.Flags().GetBool("upload"); upload {
			if err := storage.EnsureBucket(ctx, client, e.cfg.Storage.Bucket, e.cfg.Storage.Region); err != nil {
				return err
			}
			key := path.Join(checks.SnapshotFolder, fmt.Sprintf("%d-%d.json.zst", snap.WorldID, snap.TakenAt.Unix()))
			info, err := storage.Upload(ctx, client, e.cfg.Storage.Bucket, key, buf.Bytes(), "application/zstd")
			if err != nil {
				return err
			}
			e.logger.Info("Snapshot uploaded", zap.String("key", info.Key), zap.Int64("size", info.Size))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("upload", false, "Also upload the snapshot to the storage bucket")
}
