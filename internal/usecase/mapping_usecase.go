package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

const mappingCacheKey = "mapping:snapshot"

// MappingUseCase owns the camera-area map: which camera positions
// contribute to which area of which project. The map is derived from
// the project documents, kept as an immutable in-process snapshot and
// rebuilt wholesale whenever configuration changes. Reads never lock.
// The built snapshot is also mirrored to redis so restarts and sibling
// instances can warm without rescanning every project.
type MappingUseCase struct {
	projectRepo repository.ProjectRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration

	snapshot atomic.Pointer[map[string]*domain.ProjectMapping]
}

func NewMappingUseCase(
	projectRepo repository.ProjectRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MappingUseCase {
	uc := &MappingUseCase{
		projectRepo: projectRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
	empty := make(map[string]*domain.ProjectMapping)
	uc.snapshot.Store(&empty)
	return uc
}

// Warm loads the snapshot from cache when possible, falling back to a
// full rebuild from the project store.
func (uc *MappingUseCase) Warm(ctx context.Context) error {
	if uc.cacheRepo != nil {
		raw, err := uc.cacheRepo.Get(ctx, mappingCacheKey)
		if err == nil && raw != nil {
			var mappings map[string]*domain.ProjectMapping
			if err := json.Unmarshal(raw, &mappings); err == nil {
				uc.snapshot.Store(&mappings)
				uc.logger.Info("Camera-area mapping warmed from cache",
					zap.Int("projects", len(mappings)))
				return nil
			}
			uc.logger.Warn("Discarding malformed cached mapping snapshot", zap.Error(err))
		}
	}
	return uc.Refresh(ctx)
}

// Refresh rebuilds the snapshot from the project store and replaces the
// in-process map atomically.
func (uc *MappingUseCase) Refresh(ctx context.Context) error {
	projects, err := uc.projectRepo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("refresh camera mappings: %w", err)
	}

	mappings := make(map[string]*domain.ProjectMapping, len(projects))
	for _, p := range projects {
		mappings[p.ID] = domain.BuildProjectMapping(p)
	}
	uc.snapshot.Store(&mappings)

	uc.logger.Info("Camera-area mapping rebuilt", zap.Int("projects", len(mappings)))

	if uc.cacheRepo != nil {
		raw, err := json.Marshal(mappings)
		if err == nil {
			// Best effort: a failed cache write only costs the next
			// instance a rebuild.
			if err := uc.cacheRepo.Set(ctx, mappingCacheKey, raw, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache mapping snapshot", zap.Error(err))
			}
		}
	}
	return nil
}

// Invalidate drops the cached snapshot and rebuilds. Called after every
// project configuration mutation.
func (uc *MappingUseCase) Invalidate(ctx context.Context) error {
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.Delete(ctx, mappingCacheKey); err != nil {
			uc.logger.Warn("Failed to invalidate mapping cache", zap.Error(err))
		}
	}
	return uc.Refresh(ctx)
}

// Resolve returns the camera positions covering an area. Project and
// area misses are distinguished so the caller can report which lookup
// failed.
func (uc *MappingUseCase) Resolve(projectID, areaID string) (*domain.AreaMapping, error) {
	mappings := *uc.snapshot.Load()

	project, ok := mappings[projectID]
	if !ok {
		return nil, errors.ErrProjectNotFound.WithMessage(
			fmt.Sprintf("Project '%s' not found", projectID))
	}

	area := project.Area(areaID)
	if area == nil {
		return nil, errors.ErrAreaNotFound.WithMessage(
			fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
	}
	return area, nil
}
