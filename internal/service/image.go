package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/config"
)

// S3Store uploads objects to the configured bucket.
type S3Store struct {
	s3Config *config.S3Config
}

var _ ObjectStore = (*S3Store)(nil)

func NewS3Store(s3Config *config.S3Config) *S3Store {
	return &S3Store{s3Config: s3Config}
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.s3Config.PublicURL(key)
	log.Info().Str("url", publicURL).Msg("Successfully uploaded image to S3")
	return publicURL, nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}

// ImageService stores user images in object storage
type ImageService struct {
	store ObjectStore
}

var _ IImageService = (*ImageService)(nil)

func NewImageService(store ObjectStore) *ImageService {
	return &ImageService{store: store}
}

// imageKey builds "<prefix>/<user>/<random><ext>". The extension follows the
// content type, falling back to the uploaded file name.
func imageKey(prefix string, userID uuid.UUID, filename, contentType string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
			return "", fmt.Errorf("unsupported content type %q: %w", contentType, ErrInvalidInput)
		}
		ext = strings.ToLower(path.Ext(filename))
	}
	return fmt.Sprintf("%s/%s/%s%s", prefix, userID, uuid.New(), ext), nil
}

func (s *ImageService) UploadProfileImage(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	key, err := imageKey("profiles", userID, filename, contentType)
	if err != nil {
		return "", err
	}
	return s.store.Upload(ctx, key, contentType, body)
}
