package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for room image storage operations.
type StorageService interface {
	UploadImage(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadResult carries the permanent identifier and serving URL of an upload.
type UploadResult struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureUrl"`
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{cld: cld, cloudName: cloudName}
}

// UploadImage uploads a file to Cloudinary into the specified folder.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &UploadResult{PublicID: result.PublicID, SecureURL: result.SecureURL}, nil
}

// DeleteImage deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}

// PublicIDFromURL derives the public ID from a delivery URL, so rooms only
// need to persist the URL. The ID is everything after the /upload/ segment,
// minus the version segment and the file extension. Returns "" when the URL
// does not look like a delivery URL.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg != "upload" {
			continue
		}
		rest := segments[i+1:]
		if len(rest) > 0 && len(rest[0]) > 1 && rest[0][0] == 'v' && isDigits(rest[0][1:]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return ""
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id))
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
