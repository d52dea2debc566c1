package checks

import (
	"context"

	"housing-manager/core/storage"
	"housing-manager/feature/gamedata"

	"github.com/minio/minio-go/v7"
)

// RequiredGameDataFiles lists the sheets the housing catalog is built from.
var RequiredGameDataFiles = []string{gamedata.ItemFile, gamedata.PresetFile}

// CheckGameData returns a list of missing files in the gamedata folder.
func CheckGameData(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	var missing []string
	for _, filename := range RequiredGameDataFiles {
		filePath := gamedata.Folder + "/" + filename
		opts := minio.ListObjectsOptions{Prefix: filePath, MaxKeys: 1}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil && obj.Key == filePath
			break
		}
		if !found {
			missing = append(missing, filename)
		}
	}
	return missing, nil
}
