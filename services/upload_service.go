package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"harvestworld/metrics"
)

const MaxUploadBytes = 2 << 20 // 2 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var (
	ErrFileTooLarge    = errors.New("file exceeds the 2 MB limit")
	ErrInvalidFileType = errors.New("only jpg, jpeg, png and webp files are allowed")
)

type UploadService interface {
	SaveImage(entity string, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	baseDir  string
	maxBytes int64
}

func NewUploadService(baseDir string) UploadService {
	return &uploadService{
		baseDir:  baseDir,
		maxBytes: MaxUploadBytes,
	}
}

// SaveImage writes the upload under <baseDir>/<entity>/<unix-ts>_<filename>.
// The size check runs against the bytes actually read, not the declared
// Content-Length.
func (s *uploadService) SaveImage(entity string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		metrics.UploadsTotal.WithLabelValues(entity, "bad_type").Inc()
		return "", ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.maxBytes {
		metrics.UploadsTotal.WithLabelValues(entity, "too_large").Inc()
		return "", ErrFileTooLarge
	}

	dir := filepath.Join(s.baseDir, entity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s", time.Now().Unix(), sanitizeFilename(file.Filename))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues(entity, "ok").Inc()

	return filepath.ToSlash(path), nil
}

// sanitizeFilename strips path components and characters that do not
// belong in a stored file name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
