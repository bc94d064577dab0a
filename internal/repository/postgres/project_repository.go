package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// projectRepository stores project configuration as JSONB documents in
// the projects table, mirroring the document-store layout the detectors
// write against.
type projectRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewProjectRepository(db *DB, logger *zap.Logger) repository.ProjectRepository {
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *projectRepository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw,
		`SELECT data FROM projects WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get project", zap.String("project_id", id), zap.Error(err))
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal project %s: %w", id, err)
	}
	return &p, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	var rows [][]byte
	err := r.db.SelectContext(ctx, &rows,
		`SELECT data FROM projects ORDER BY id`)
	if err != nil {
		r.logger.Error("failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]*domain.Project, 0, len(rows))
	for _, raw := range rows {
		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, nil
}

func (r *projectRepository) CreateProject(ctx context.Context, p *domain.Project) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (id, data) VALUES ($1, $2)`, p.ID, raw)
	if err != nil {
		r.logger.Error("failed to create project", zap.String("project_id", p.ID), zap.Error(err))
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, p *domain.Project) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET data = $2 WHERE id = $1`, p.ID, raw)
	if err != nil {
		r.logger.Error("failed to update project", zap.String("project_id", p.ID), zap.Error(err))
		return fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete project", zap.String("project_id", id), zap.Error(err))
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}
