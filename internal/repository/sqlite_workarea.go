package repository

import (
	"context"
	"fmt"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

// SQLiteWorkAreaRepo implements WorkAreaRepo using a SQLite database.
type SQLiteWorkAreaRepo struct {
	db db.DBTX
}

// NewSQLiteWorkAreaRepo creates a new SQLiteWorkAreaRepo.
func NewSQLiteWorkAreaRepo(conn db.DBTX) *SQLiteWorkAreaRepo {
	return &SQLiteWorkAreaRepo{db: conn}
}

func (r *SQLiteWorkAreaRepo) Create(ctx context.Context, w *domain.WorkArea) error {
	query := `INSERT INTO work_areas (id, project_id, name, position) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(w.ID), string(w.ProjectID), w.Name, w.Position)
	if err != nil {
		return fmt.Errorf("inserting work area: %w", err)
	}
	return nil
}

// ListByProject returns the project's work areas in their persisted list order.
func (r *SQLiteWorkAreaRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.WorkArea, error) {
	query := `SELECT id, project_id, name, position
		FROM work_areas WHERE project_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing work areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.WorkArea
	for rows.Next() {
		var w domain.WorkArea
		var id, pid string
		if err := rows.Scan(&id, &pid, &w.Name, &w.Position); err != nil {
			return nil, fmt.Errorf("scanning work area: %w", err)
		}
		w.ID = domain.WorkAreaID(id)
		w.ProjectID = domain.ProjectID(pid)
		areas = append(areas, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work areas: %w", err)
	}
	return areas, nil
}
