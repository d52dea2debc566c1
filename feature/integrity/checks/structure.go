package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"housing-manager/core/storage"
	"housing-manager/feature/gamedata"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotFolder is the bucket prefix exported estate snapshots are uploaded to.
const SnapshotFolder = "snapshots"

// RequiredFolders lists the folders that must exist in the bucket.
var RequiredFolders = []string{gamedata.Folder, SnapshotFolder}

// CheckStructure returns a list of missing folders.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	var missing []string
	for _, folder := range RequiredFolders {
		if !hasPrefix(ctx, client, bucket, folderPath(folder)) {
			missing = append(missing, folder)
		}
	}
	return missing, nil
}

// FixStructure creates the missing folders as empty marker objects.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func requireBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}

// hasPrefix reports whether at least one object lives under prefix.
func hasPrefix(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	opts := minio.ListObjectsOptions{Prefix: prefix, MaxKeys: 1}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		return obj.Err == nil
	}
	return false
}
