// File: /services/media_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"socialfeed-api/utils"
)

// MediaService stores post attachments on local disk and hands back relative
// references. The database only ever sees the reference, never the bytes.
type MediaService struct {
	basePath string
	baseURL  string
}

func NewMediaService(basePath, baseURL string) (*MediaService, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &MediaService{basePath: basePath, baseURL: baseURL}, nil
}

// SavePostMedia writes an uploaded file under the post's directory and
// returns the relative reference stored on the post row.
func (s *MediaService) SavePostMedia(postID string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(file.Filename))
	ref := "posts/" + postID + "/" + name

	fullPath := filepath.Join(s.basePath, "posts", postID, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store media file: %w", err)
	}

	utils.Logger.Info("stored post media", zap.String("ref", ref))
	return ref, nil
}

// DeletePostMedia removes every file stored for the post.
func (s *MediaService) DeletePostMedia(postID string) error {
	return os.RemoveAll(filepath.Join(s.basePath, "posts", postID))
}

// PublicURL maps a stored reference to the URL the static file server
// exposes, or nil when there is no attachment.
func (s *MediaService) PublicURL(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	url := s.baseURL + "/storage/" + *ref
	return &url
}
