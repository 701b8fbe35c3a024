package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"internhub_backend/internal/config"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services/dto"
	"internhub_backend/internal/storage"
	"internhub_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	Upload(ctx context.Context, role models.UserRole, uploadType string, fileHeader *multipart.FileHeader) (*dto.UploadResult, error)
}

type UploadServiceImpl struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &UploadServiceImpl{
		store: store,
		cfg:   cfg,
	}
}

// Upload validates the file against the configured limits, stores it under a
// type-specific folder with a random name and returns the public URL.
func (s *UploadServiceImpl) Upload(ctx context.Context, role models.UserRole, uploadType string, fileHeader *multipart.FileHeader) (*dto.UploadResult, error) {
	if uploadType == "" {
		uploadType = dto.UploadTypeCompanyLogo
	}

	if err := validateUploadType(role, uploadType); err != nil {
		return nil, err
	}

	if fileHeader.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the maximum size of %d bytes", s.cfg.Upload.MaxSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !s.isAllowedType(contentType) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File type %s is not allowed", contentType))
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := uploadType + "/" + name

	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResult{
		URL:  url,
		Type: uploadType,
	}, nil
}

func (s *UploadServiceImpl) isAllowedType(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// validateUploadType pairs the upload kind with the caller's role: students
// own avatars and resumes, companies own logos.
func validateUploadType(role models.UserRole, uploadType string) error {
	switch uploadType {
	case dto.UploadTypeStudentAvatar, dto.UploadTypeStudentResume:
		if role != models.UserRoleStudent {
			return apperrors.NewForbiddenError("Only students can upload this file type")
		}
	case dto.UploadTypeCompanyLogo:
		if role != models.UserRoleCompany {
			return apperrors.NewForbiddenError("Only companies can upload a logo")
		}
	default:
		return apperrors.NewBadRequestError("Unknown upload type")
	}
	return nil
}

// sniffContentType reads the first 512 bytes and rewinds, so headers sent by
// the client never decide what the file is.
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buf[:n])
	// DetectContentType appends charset parameters to text types.
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	return contentType, nil
}
