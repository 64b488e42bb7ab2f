package mediaimpl

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/media"
	"github.com/whispr-campus/whispr/pkg/errors"
)

func (s *S3Impl) Upload(ctx context.Context, file media.File) (string, error) {
	if s.s3 == nil {
		return "", errors.ErrNotConfigured
	}
	if len(file.Data) == 0 {
		return "", errors.InvalidInput("media file is empty")
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := objectKey(file.Filename, contentType)

	_, err := s.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("Failed to upload media", "key", key, "error", err)
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := s.publicURL(key)
	s.logger.Info("Media uploaded", "key", key, "content_type", contentType, "size", len(file.Data))
	return url, nil
}

func (s *S3Impl) publicURL(key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cdnURL, "/"), key)
	}
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	if host == "" {
		host = "s3.amazonaws.com"
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, host, key)
}

// objectKey never reuses the client filename beyond its extension.
func objectKey(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return fmt.Sprintf("%s/%s%s", keyPrefix, uuid.NewString(), ext)
}
