package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/config"
)

// MaxAvatarSize caps avatar uploads at 5 MiB.
const MaxAvatarSize = 5 << 20

var avatarContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageService handles avatar storage on S3.
type ImageService struct {
	s3Config *config.S3Config
}

var _ IImageService = (*ImageService)(nil)

// NewImageService creates an ImageService over the configured bucket.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadAvatar stores an avatar image under the user's key space and returns
// the public object URL.
func (s *ImageService) UploadAvatar(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (string, error) {
	ext, ok := avatarContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported avatar content type %s", ErrValidation, contentType)
	}
	if size > MaxAvatarSize {
		return "", fmt.Errorf("%w: avatar exceeds %d bytes", ErrValidation, MaxAvatarSize)
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] uploaded avatar for %s: %s", userID, publicURL)
	return publicURL, nil
}
