package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chartmuseum/storage"

	"github.com/prasetyadi/dealer-restock/internal/config"
)

// ArchiveClient stores planning-run snapshots in S3-compatible object
// storage so a run can be replayed offline when a recommendation looks off.
// The engine never reads these back.
type ArchiveClient struct {
	backend storage.Backend
}

// NewArchiveClient builds an ArchiveClient backed by chartmuseum's Amazon
// storage backend.
func NewArchiveClient(cfg config.ArchiveConfig) (*ArchiveClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		scheme := "https"
		if !cfg.UseSSL {
			scheme = "http"
		}
		endpoint = fmt.Sprintf("%s://%s", scheme, strings.TrimPrefix(cfg.Endpoint, "//"))
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	os.Setenv("AWS_ACCESS_KEY_ID", cfg.AccessKey)
	os.Setenv("AWS_SECRET_ACCESS_KEY", cfg.SecretKey)
	os.Setenv("AWS_REGION", region)
	os.Setenv("AWS_DEFAULT_REGION", region)

	backend := storage.NewAmazonS3BackendWithOptions(
		cfg.Bucket,
		"", // no prefix
		region,
		endpoint,
		"",
		&storage.AmazonS3Options{
			S3ForcePathStyle: awsBool(true),
		},
	)

	return &ArchiveClient{backend: backend}, nil
}

// ListObjects lists archived runs for a given prefix.
func (c *ArchiveClient) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	files, err := c.backend.ListObjects(prefix)
	if err != nil {
		return nil, fmt.Errorf("archive list failed: %w", err)
	}
	results := make([]ObjectInfo, 0)
	for _, object := range files {
		results = append(results, ObjectInfo{
			Key:  object.Path,
			Size: int64(len(object.Content)),
		})
	}
	return results, nil
}

// UploadObject writes one object to the archive bucket.
func (c *ArchiveClient) UploadObject(ctx context.Context, key string, data []byte) error {
	if err := c.backend.PutObject(key, data); err != nil {
		return fmt.Errorf("archive upload failed: %w", err)
	}
	return nil
}

var _ ObjectStorage = (*ArchiveClient)(nil)

// RunKey builds the archive object key for one planning run.
func RunKey(dealer string, at time.Time) string {
	return fmt.Sprintf("runs/%s/%s.json", strings.ToLower(strings.TrimSpace(dealer)), at.UTC().Format("20060102T150405Z"))
}

// RunPrefix returns the archive listing prefix for one dealer's runs, or the
// whole runs area when dealer is empty.
func RunPrefix(dealer string) string {
	d := strings.ToLower(strings.TrimSpace(dealer))
	if d == "" {
		return "runs/"
	}
	return "runs/" + d + "/"
}

// EncodeRun marshals the archived payload for one planning run.
func EncodeRun(input, output any) ([]byte, error) {
	payload := map[string]any{
		"input":  input,
		"output": output,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode run payload: %w", err)
	}
	return data, nil
}

func awsBool(v bool) *bool {
	return &v
}
