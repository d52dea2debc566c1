package gamedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"housing-manager/core/cache"
	"housing-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	// Folder is the bucket prefix holding gamedata sheets.
	Folder = "gamedata"
	// ItemFile and PresetFile are the sheets read by Source.
	ItemFile   = "Item.json"
	PresetFile = "HousingPreset.json"

	cacheKey = "gamedata"
)

// Source loads gamedata sheets from object storage and keeps the parsed
// snapshot for a TTL.
type Source struct {
	client storage.Client
	bucket string
	cache  *cache.Store[*Data]
	logger *zap.Logger
}

// NewSource creates a catalog reading from bucket. A zero ttl reloads on every lookup.
func NewSource(client storage.Client, bucket string, ttl time.Duration, logger *zap.Logger) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		cache:  cache.New[*Data](ttl),
		logger: logger,
	}
}

// Load returns the current snapshot, reading storage when the cached one expired.
func (s *Source) Load(ctx context.Context) (*Data, error) {
	return s.cache.Get(ctx, cacheKey, s.build)
}

// Refresh drops the cached snapshot.
func (s *Source) Refresh() {
	s.cache.Invalidate(cacheKey)
}

func (s *Source) Item(ctx context.Context, id uint32) (Item, error) {
	d, err := s.Load(ctx)
	if err != nil {
		return Item{}, err
	}
	return d.Item(ctx, id)
}

func (s *Source) Preset(ctx context.Context, id uint32) (Preset, error) {
	d, err := s.Load(ctx)
	if err != nil {
		return Preset{}, err
	}
	return d.Preset(ctx, id)
}

func (s *Source) build(ctx context.Context) (*Data, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", s.bucket)
	}

	var items []Item
	if err := s.readJSON(ctx, ItemFile, &items); err != nil {
		return nil, err
	}
	var presets []Preset
	if err := s.readJSON(ctx, PresetFile, &presets); err != nil {
		return nil, err
	}

	d := NewData(items, presets)
	s.logger.Info("Loaded gamedata", zap.Int("items", len(items)), zap.Int("presets", len(presets)))
	return d, nil
}

func (s *Source) readJSON(ctx context.Context, file string, out any) error {
	reader, err := s.client.GetObject(ctx, s.bucket, Folder+"/"+file, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}
