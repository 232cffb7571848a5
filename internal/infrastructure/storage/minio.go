package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bookworm-backend/internal/config"
)

// MinIOStorage holds book cover images. Uploads return a stable public
// URL that is persisted on the book record.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// UploadCover takes the client-supplied base64 image payload, normalizes
// it to a bounded JPEG and stores it under key (e.g. covers/<uuid>.jpg).
// Returns the public URL of the stored object.
func (s *MinIOStorage) UploadCover(ctx context.Context, key string, payload string) (string, error) {
	data, err := decodeImagePayload(payload)
	if err != nil {
		return "", err
	}

	normalized, err := normalizeCover(data)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(normalized),
		int64(len(normalized)),
		minio.PutObjectOptions{ContentType: "image/jpeg"},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key), nil
}

// Delete removes a stored object.
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ObjectKey maps a stored cover URL back to its object key. ok=false
// means the URL does not point into our bucket (e.g. an externally
// hosted image) and must not be deleted.
func (s *MinIOStorage) ObjectKey(coverURL string) (string, bool) {
	return objectKeyForBucket(coverURL, s.bucket)
}

func objectKeyForBucket(coverURL, bucket string) (string, bool) {
	u, err := url.Parse(coverURL)
	if err != nil {
		return "", false
	}

	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
