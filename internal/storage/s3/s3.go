// Package s3 issues time-limited upload URLs and deletes stored objects.
// Clients upload directly to the bucket; this service never proxies file
// bytes.
package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type Storage struct {
	client    *awss3.Client
	presigner *awss3.PresignClient
	bucket    string
	uploadTTL time.Duration
}

func New(ctx context.Context, region, bucket string, uploadTTL time.Duration) (*Storage, error) {
	const op = "storage.s3.New"

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := awss3.NewFromConfig(cfg)

	return &Storage{
		client:    client,
		presigner: awss3.NewPresignClient(client),
		bucket:    bucket,
		uploadTTL: uploadTTL,
	}, nil
}

// PresignUpload returns a presigned PUT URL and the object key the client
// must reference after uploading.
func (s *Storage) PresignUpload(ctx context.Context, fileType string) (string, string, error) {
	const op = "storage.s3.PresignUpload"

	key := "uploads/" + uuid.NewString() + extensionFor(fileType)

	req, err := s.presigner.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, awss3.WithPresignExpires(s.uploadTTL))
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return req.URL, key, nil
}

// DeleteObject removes the stored object. A missing object is not an error:
// the record cleanup must still proceed.
func (s *Storage) DeleteObject(ctx context.Context, key string) error {
	const op = "storage.s3.DeleteObject"

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
