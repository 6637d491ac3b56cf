package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hotel-services/internal/config"
)

// Store persists an object and returns its public URL.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store returns nil when no bucket is configured.
func NewS3Store(cfg *config.Config) *S3Store {
	if !cfg.MediaEnabled() {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKey != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		)
	}
	if cfg.S3Endpoint != "" {
		// MinIO and other S3-compatible servers
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

// ServiceImageKey is unique per upload so cached URLs never go stale.
func ServiceImageKey(serviceID uint) string {
	return path.Join("services", fmt.Sprint(serviceID), uuid.NewString()+".webp")
}

var _ Store = (*S3Store)(nil)
