package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUploadAvatarRejectsBadContentType(t *testing.T) {
	svc := NewImageService(nil)
	_, err := svc.UploadAvatar(context.Background(), uuid.New(), strings.NewReader("data"), 4, "application/pdf")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUploadAvatarRejectsOversizedFile(t *testing.T) {
	svc := NewImageService(nil)
	_, err := svc.UploadAvatar(context.Background(), uuid.New(), strings.NewReader("data"), MaxAvatarSize+1, "image/png")
	assert.ErrorIs(t, err, ErrValidation)
}
