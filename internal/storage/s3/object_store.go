package s3

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	appconfig "docweld/internal/config"
	"docweld/internal/domain/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore implements the services.ObjectStore capability on top of an
// S3-compatible bucket.
type ObjectStore struct {
	client   *s3.Client
	psClient *s3.PresignClient
	bucket   string
	logger   *slog.Logger
}

// NewObjectStore creates the object store client. Local mode targets a
// MinIO-style endpoint with path-style addressing and static dev credentials.
func NewObjectStore(ctx context.Context, cfg *appconfig.StorageConfig, logger *slog.Logger) (*ObjectStore, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				"minioadmin",
				"minioadmin",
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	logger.Info("object store initialized",
		"bucket", cfg.Bucket,
		"local", cfg.Local,
	)

	return &ObjectStore{
		client:   client,
		psClient: s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
		logger:   logger,
	}, nil
}

var _ services.ObjectStore = (*ObjectStore)(nil)

// Copy copies one object within the bucket. The copy is atomic per object;
// a non-nil error means nothing was written at destPath.
func (s *ObjectStore) Copy(ctx context.Context, sourcePath, destPath string) error {
	// CopySource is bucket/key, URL-encoded
	source := url.PathEscape(fmt.Sprintf("%s/%s", s.bucket, sourcePath))

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(source),
		Key:        aws.String(destPath),
	})
	if err != nil {
		return fmt.Errorf("copy object %s: %w", sourcePath, err)
	}

	return nil
}

// PresignGet returns a time-limited download URL for an object
func (s *ObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("presign get for %s: %w", key, err)
	}

	return req.URL, nil
}
