package repository

import (
	"context"

	"github.com/tensora-ai/cc-backend/internal/domain"
)

// ProjectRepository persists project configuration documents.
type ProjectRepository interface {
	// GetProject returns a project by id, or nil when it does not exist.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// ListProjects returns every project document.
	ListProjects(ctx context.Context) ([]*domain.Project, error)

	// CreateProject stores a new project document.
	CreateProject(ctx context.Context, p *domain.Project) error

	// UpdateProject replaces an existing project document wholesale.
	UpdateProject(ctx context.Context, p *domain.Project) error

	// DeleteProject removes a project. Returns false when it did not exist.
	DeleteProject(ctx context.Context, id string) (bool, error)
}
