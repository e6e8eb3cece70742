package media_storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/prateek9389/prateekportfolio/internal/application/service"
	"github.com/prateek9389/prateekportfolio/internal/config"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

const uploadFolder = "portfolio"

// cloudinaryAdapter uploads staged media to Cloudinary. The client is built
// lazily: missing Cloudinary configuration is an error for the upload that
// needs it, not for server startup.
type cloudinaryAdapter struct {
	cfg    config.Config
	logger logger.Logger

	mu  sync.Mutex
	cld *cloudinary.Cloudinary
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) service.Uploader {
	return &cloudinaryAdapter{cfg: cfg, logger: log}
}

func (a *cloudinaryAdapter) client() (*cloudinary.Cloudinary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cld != nil {
		return a.cld, nil
	}

	if a.cfg.Cloudinary.CloudName == "" || a.cfg.Cloudinary.UploadPreset == "" {
		return nil, apperror.NewUploadFailed("cloudinary cloud name or upload preset is not configured", nil)
	}

	cld, err := cloudinary.NewFromParams(
		a.cfg.Cloudinary.CloudName,
		a.cfg.Cloudinary.ApiKey,
		a.cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, apperror.NewUploadFailed("cannot init cloudinary", err)
	}

	a.logger.Info("Connect Cloudinary successfully.")
	a.cld = cld
	return cld, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, filename, mimeType string, classification service.Classification) (string, error) {
	cld, err := a.client()
	if err != nil {
		return "", err
	}

	resourceType := service.Classify(mimeType, filename, classification)

	uploadParams := uploader.UploadParams{
		PublicID:     uuid.NewString(),
		Folder:       uploadFolder,
		UploadPreset: a.cfg.Cloudinary.UploadPreset,
		ResourceType: string(resourceType),
	}
	result, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", apperror.NewUploadFailed(fmt.Sprintf("failed to upload '%s' to cloudinary", filename), err)
	}
	if result.SecureURL == "" {
		return "", apperror.NewUploadFailed(fmt.Sprintf("cloudinary returned no URL for '%s'", filename), nil)
	}
	return result.SecureURL, nil
}
