// internal/storage/cloudinary.go
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/config"
)

// CloudinaryStorage uploads proof images to Cloudinary instead of local disk.
// The public URL is the secure URL Cloudinary returns.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initializes the client and verifies the credentials
// with a cheap Admin API call before the server starts taking uploads.
func NewCloudinaryStorage(cfg *config.Config) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Verifying Cloudinary credentials...")
	if _, err := cld.Admin.Assets(verifyCtx, admin.AssetsParams{MaxResults: 1}); err != nil {
		return nil, fmt.Errorf("failed to verify Cloudinary credentials: %w", err)
	}
	log.Println("✅ Cloudinary storage successfully initialized.")

	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Save(originalName string, r io.Reader) (string, string, error) {
	name := uniqueName(originalName)
	publicID := strings.TrimSuffix(name, filepath.Ext(name))

	result, err := s.cld.Upload.Upload(context.Background(), r, uploader.UploadParams{
		Folder:   "payment-proofs",
		PublicID: publicID,
	})
	if err != nil {
		return "", "", fmt.Errorf("Cloudinary upload failed: %w", err)
	}

	return name, result.SecureURL, nil
}
