package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type uploadService struct {
	logger   *zap.Logger
	uploader Uploader
	cfg      Config
}

func newUploadService(logger *zap.Logger, uploader Uploader, cfg Config) Upload {
	return &uploadService{
		logger:   logger,
		uploader: uploader,
		cfg:      cfg,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadDisabled
	}

	if fileHeader.Size > s.cfg.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrFileMustHaveAValidExtension
	}

	contentType, err := sniffContentType(file)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read uploaded file(%s): %s", fileHeader.Filename, err.Error())
		return "", ErrInternal
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileMustBeImage
	}

	key := fmt.Sprintf("%s-%s%s", time.Now().UTC().Format("20060102150405"), uuid.NewString(), ext)

	url, err := s.uploader.Upload(ctx, key, file, contentType)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload image(%s) to storage: %s", key, err.Error())
		return "", ErrFailedToUploadImage
	}

	return url, nil
}

// sniffContentType reads the file head and rewinds it.
func sniffContentType(file multipart.File) (string, error) {
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(head[:n]), nil
}
