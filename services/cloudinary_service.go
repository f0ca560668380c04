package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// posterFolder groups all uploaded posters under one Cloudinary folder.
const posterFolder = "torrtop/posters"

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

// InitCloudinary initializes the shared Cloudinary service used for poster
// uploads from the admin form.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

// GetCloudinaryService returns the initialized Cloudinary service
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadPoster uploads a poster image and returns the secure URL that goes
// into the torrent record.
func (s *CloudinaryService) UploadPoster(ctx context.Context, file multipart.File, filename string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         posterFolder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload poster: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeletePoster deletes a poster from Cloudinary using its public ID
func (s *CloudinaryService) DeletePoster(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// PosterPublicID extracts the Cloudinary public ID from a poster URL. It
// returns "" for URLs outside our poster folder, so externally hosted posters
// are never destroyed.
func PosterPublicID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	marker := "/" + posterFolder + "/"
	idx := strings.Index(parsed.Path, marker)
	if idx < 0 {
		return ""
	}
	name := parsed.Path[idx+len(marker):]
	if name == "" {
		return ""
	}
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return posterFolder + "/" + name
}
