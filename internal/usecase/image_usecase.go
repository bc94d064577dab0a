package usecase

import (
	"context"
	"fmt"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImageUseCase serves heatmap renderings and other binary assets the
// detectors upload alongside their counts.
type ImageUseCase struct {
	blobRepo repository.BlobRepository
	logger   *zap.Logger
}

func NewImageUseCase(blobRepo repository.BlobRepository, logger *zap.Logger) *ImageUseCase {
	return &ImageUseCase{
		blobRepo: blobRepo,
		logger:   logger,
	}
}

// GetImage returns an image blob from the images container.
func (uc *ImageUseCase) GetImage(ctx context.Context, name string) (*domain.Blob, error) {
	return uc.GetBlob(ctx, domain.ContainerImages, name)
}

// GetBlob returns a blob from a whitelisted container.
func (uc *ImageUseCase) GetBlob(ctx context.Context, container domain.Container, name string) (*domain.Blob, error) {
	if !container.Valid() {
		return nil, errors.ErrInvalidContainer.WithMessage(
			fmt.Sprintf("Invalid container name '%s'. Must be one of: %s, %s",
				container, domain.ContainerImages, domain.ContainerDensity))
	}

	blob, err := uc.blobRepo.GetBlob(ctx, container, name)
	if err != nil {
		uc.logger.Error("Failed to get blob",
			zap.String("container", string(container)),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	if blob == nil {
		return nil, errors.ErrBlobNotFound.WithMessage(
			fmt.Sprintf("Blob '%s' not found in container '%s'", name, container))
	}
	return blob, nil
}

// FindHeatmaps resolves which heatmap blobs exist for a batch of camera
// timestamps, matching on the naming prefix each timestamp implies.
func (uc *ImageUseCase) FindHeatmaps(
	ctx context.Context,
	projectID string,
	req dto.HeatmapLookupRequest,
) (*dto.HeatmapLookupResponse, error) {
	prefixes := make([]string, len(req.CameraTimestamps))
	for i, ct := range req.CameraTimestamps {
		prefixes[i] = ct.BlobPrefix(projectID)
	}

	names, err := uc.blobRepo.FindNamesByPrefixes(ctx, domain.ContainerImages, prefixes)
	if err != nil {
		uc.logger.Error("Failed to look up heatmaps",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	if names == nil {
		names = []string{}
	}
	return &dto.HeatmapLookupResponse{Names: names}, nil
}
