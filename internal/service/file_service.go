package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"printflow/internal/access"
	"printflow/internal/config"
	"printflow/internal/domain"
	"printflow/internal/port"
)

// FileUploadInput is the DTO for dossier file upload requests.
type FileUploadInput struct {
	Dossier domain.Dossier
	User    domain.User
	File    multipart.File
	Header  *multipart.FileHeader
}

// FileService manages artwork files attached to a dossier. Every operation
// is gated through the access engine before touching storage.
type FileService interface {
	Upload(ctx context.Context, input FileUploadInput) (*domain.DossierFile, error)
	List(ctx context.Context, user domain.User, dossier domain.Dossier, offset, limit int) ([]domain.DossierFile, int, error)
	GetDownloadURL(ctx context.Context, user domain.User, dossier domain.Dossier, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, user domain.User, dossier domain.Dossier, fileID uuid.UUID) error
}

type fileService struct {
	fileRepo port.DossierFileRepository
	storage  port.ObjectStorage
	cfg      *config.S3Config
	activity ActivityService
}

// NewFileService creates a new FileService implementation.
func NewFileService(
	fileRepo port.DossierFileRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
	activity ActivityService,
) FileService {
	return &fileService{
		fileRepo: fileRepo,
		storage:  storage,
		cfg:      cfg,
		activity: activity,
	}
}

func (s *fileService) Upload(ctx context.Context, input FileUploadInput) (*domain.DossierFile, error) {
	if decision := access.CanAccessDossier(input.User, input.Dossier, domain.ActionUploadFile); !decision.Allowed {
		return nil, domain.Denied(decision.Message)
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("dossiers/%s/files/%s/%s", input.Dossier.ID, fileID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	file := &domain.DossierFile{
		ID:           fileID,
		DossierID:    input.Dossier.ID,
		UploadedBy:   input.User.ID,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
	}

	log.Printf("fileService.Upload: uploading %s (%s, %d bytes) to dossier %s by user %s",
		input.Header.Filename, contentType, input.Header.Size, input.Dossier.OrderNumber, input.User.ID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("fileService.Upload: S3 upload failed for file %s: %v", file.ID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Orphaned object; remove it so storage stays consistent with metadata.
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, s3Key); delErr != nil {
			log.Printf("fileService.Upload: cleanup of %s failed: %v", s3Key, delErr)
		}
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	s.activity.Log(ctx, &input.Dossier.ID, input.User.ID, "upload_file",
		fmt.Sprintf("file %s uploaded", input.Header.Filename))
	return file, nil
}

func (s *fileService) List(ctx context.Context, user domain.User, dossier domain.Dossier, offset, limit int) ([]domain.DossierFile, int, error) {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionAccessFiles); !decision.Allowed {
		return nil, 0, domain.Denied(decision.Message)
	}
	return s.fileRepo.ListByDossier(ctx, dossier.ID, offset, limit)
}

func (s *fileService) GetDownloadURL(ctx context.Context, user domain.User, dossier domain.Dossier, fileID uuid.UUID) (string, error) {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionDownload); !decision.Allowed {
		return "", domain.Denied(decision.Message)
	}
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	if file.DossierID != dossier.ID {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, file.S3Bucket, file.S3Key, s.cfg.PresignExpiry)
}

func (s *fileService) Delete(ctx context.Context, user domain.User, dossier domain.Dossier, fileID uuid.UUID) error {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionDeleteFile); !decision.Allowed {
		return domain.Denied(decision.Message)
	}

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file.DossierID != dossier.ID {
		return domain.ErrNotFound
	}

	if err := s.storage.Delete(ctx, file.S3Bucket, file.S3Key); err != nil {
		log.Printf("fileService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	if err := s.fileRepo.Delete(ctx, fileID); err != nil {
		return err
	}
	s.activity.Log(ctx, &dossier.ID, user.ID, "delete_file",
		fmt.Sprintf("file %s deleted", file.OriginalName))
	return nil
}
