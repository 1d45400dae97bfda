package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/urbina-joyeria/taller-api/utils"
)

// PhotoService handles storage of piece photos attached to orders.
type PhotoService interface {
	// UploadPhoto validates and stores a photo, returns the storage key
	UploadPhoto(fileHeader *multipart.FileHeader) (string, error)

	// GetPhotoURL generates a URL for accessing a stored photo
	GetPhotoURL(photoKey string) (string, error)

	// DeletePhoto removes a photo from storage
	DeletePhoto(photoKey string) error
}

var photoServiceInstance PhotoService

// GetPhotoService returns the initialized photo service instance
func GetPhotoService() PhotoService {
	return photoServiceInstance
}

// SetPhotoService sets the photo service instance (primarily for testing)
func SetPhotoService(service PhotoService) {
	photoServiceInstance = service
}

// S3PhotoService stores photos in AWS S3 behind presigned URLs.
type S3PhotoService struct {
	s3Service S3Interface
}

// InitS3PhotoService initializes the photo service with the S3 backend
func InitS3PhotoService(s3Service S3Interface) PhotoService {
	photoServiceInstance = &S3PhotoService{
		s3Service: s3Service,
	}
	return photoServiceInstance
}

// UploadPhoto validates and uploads a photo to S3
func (s *S3PhotoService) UploadPhoto(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return s3Key, nil
}

// GetPhotoURL generates a presigned URL for accessing a photo
func (s *S3PhotoService) GetPhotoURL(photoKey string) (string, error) {
	if photoKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(photoKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate photo URL: %w", err)
	}

	return url, nil
}

// DeletePhoto deletes a photo from S3
func (s *S3PhotoService) DeletePhoto(photoKey string) error {
	if photoKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(photoKey); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return nil
}

// LocalPhotoService stores photos on the local filesystem. Used in
// development when no S3 bucket is configured.
type LocalPhotoService struct {
	uploadDir string
}

// InitLocalPhotoService initializes the photo service with local storage
func InitLocalPhotoService(uploadDir string) PhotoService {
	photoServiceInstance = &LocalPhotoService{
		uploadDir: uploadDir,
	}
	return photoServiceInstance
}

// UploadPhoto validates and saves a photo to the upload directory
func (s *LocalPhotoService) UploadPhoto(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to save photo: %w", err)
	}

	return filename, nil
}

// GetPhotoURL returns the serving path for a locally stored photo
func (s *LocalPhotoService) GetPhotoURL(photoKey string) (string, error) {
	return utils.GetImageURL(photoKey), nil
}

// DeletePhoto removes a photo from the upload directory
func (s *LocalPhotoService) DeletePhoto(photoKey string) error {
	if photoKey == "" {
		return nil
	}

	path := filepath.Join(s.uploadDir, filepath.Base(photoKey))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return nil
}
