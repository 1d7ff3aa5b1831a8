package repository

import (
	"context"
	"fmt"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

// SQLiteCraftRepo implements CraftRepo using a SQLite database.
type SQLiteCraftRepo struct {
	db db.DBTX
}

// NewSQLiteCraftRepo creates a new SQLiteCraftRepo.
func NewSQLiteCraftRepo(conn db.DBTX) *SQLiteCraftRepo {
	return &SQLiteCraftRepo{db: conn}
}

func (r *SQLiteCraftRepo) Create(ctx context.Context, c *domain.Craft) error {
	query := `INSERT INTO crafts (id, project_id, name, color, position) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(c.ID), string(c.ProjectID), c.Name, c.Color, c.Position)
	if err != nil {
		return fmt.Errorf("inserting craft: %w", err)
	}
	return nil
}

// ListByProject returns the project's crafts in their persisted list order.
func (r *SQLiteCraftRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Craft, error) {
	query := `SELECT id, project_id, name, color, position
		FROM crafts WHERE project_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing crafts: %w", err)
	}
	defer rows.Close()

	var crafts []*domain.Craft
	for rows.Next() {
		var c domain.Craft
		var id, pid string
		if err := rows.Scan(&id, &pid, &c.Name, &c.Color, &c.Position); err != nil {
			return nil, fmt.Errorf("scanning craft: %w", err)
		}
		c.ID = domain.CraftID(id)
		c.ProjectID = domain.ProjectID(pid)
		crafts = append(crafts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crafts: %w", err)
	}
	return crafts, nil
}
