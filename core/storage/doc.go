// Package storage provides the object storage client of the housing manager.
//
// The bucket holds the gamedata sheets the housing catalog is read from and
// the estate snapshots written by the export command. The Client interface
// wraps the MinIO Go client so both S3 and self-hosted MinIO work, and so
// storage can be mocked in tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	err = storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
//	info, err := storage.Upload(ctx, client, cfg.Bucket, "snapshots/67.json.zst", data, "application/zstd")
package storage
