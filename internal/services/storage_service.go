// internal/services/storage_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/autovista/dealership-backend/internal/config"
)

const maxImageSize = 10 << 20 // 10 MB

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidFileType = errors.New("file is not a supported image type")
)

// StorageService stores vehicle media. With AWS credentials configured it
// writes to S3, otherwise to the local media root. Either way it returns a
// relative path; absolute URLs are built at the edge from the configured
// media base URL.
type StorageService struct {
	cfg      *config.Config
	s3Client *s3.S3
}

func NewStorageService(cfg *config.Config) *StorageService {
	svc := &StorageService{cfg: cfg}

	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWS.Region),
			Credentials: credentials.NewStaticCredentials(
				cfg.AWS.AccessKeyID,
				cfg.AWS.SecretAccessKey,
				"",
			),
		})
		if err != nil {
			logrus.WithError(err).Warn("Failed to create AWS session, falling back to local storage")
		} else {
			svc.s3Client = s3.New(sess)
		}
	}

	return svc
}

// UploadImage validates and stores an uploaded image under the given folder
// ("cars" or "motorcycles") and returns its relative path.
func (s *StorageService) UploadImage(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader.Size > maxImageSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType, err := detectImageType(data)
	if err != nil {
		return "", err
	}

	key := generateFileName(folder, fileHeader.Filename)

	if s.s3Client != nil {
		if err := s.uploadToS3(key, data, contentType); err != nil {
			return "", err
		}
		return key, nil
	}

	if err := s.uploadToLocal(key, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *StorageService) uploadToS3(key string, data []byte, contentType string) error {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *StorageService) uploadToLocal(key string, data []byte) error {
	path := filepath.Join(s.cfg.Media.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// detectImageType checks the magic bytes rather than trusting the uploaded
// content type.
func detectImageType(data []byte) (string, error) {
	if len(data) < 12 {
		return "", ErrInvalidFileType
	}

	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg", nil
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "image/png", nil
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif", nil
	case bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp", nil
	}

	return "", ErrInvalidFileType
}

func generateFileName(folder, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%s/%s%s",
		folder,
		time.Now().Format("2006/01"),
		uuid.New().String(),
		ext,
	)
}
