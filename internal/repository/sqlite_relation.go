package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

// SQLiteRelationRepo implements RelationRepo using a SQLite database.
type SQLiteRelationRepo struct {
	db db.DBTX
}

// NewSQLiteRelationRepo creates a new SQLiteRelationRepo.
func NewSQLiteRelationRepo(conn db.DBTX) *SQLiteRelationRepo {
	return &SQLiteRelationRepo{db: conn}
}

func (r *SQLiteRelationRepo) Create(ctx context.Context, rel *domain.Relation) error {
	query := `INSERT INTO relations (project_id, type, source_id, source_kind, target_id, target_kind, critical)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(rel.ProjectID),
		string(rel.Type),
		rel.Source.ID,
		string(rel.Source.Kind),
		rel.Target.ID,
		string(rel.Target.Kind),
		nullableBool(rel.Critical),
	)
	if err != nil {
		return fmt.Errorf("inserting relation: %w", err)
	}
	return nil
}

// Exists reports whether a relation with the same type and endpoints
// already exists in the project.
func (r *SQLiteRelationRepo) Exists(ctx context.Context, rel *domain.Relation) (bool, error) {
	query := `SELECT 1 FROM relations
		WHERE project_id = ? AND type = ? AND source_id = ? AND source_kind = ?
			AND target_id = ? AND target_kind = ?`
	var one int
	err := r.db.QueryRowContext(ctx, query,
		string(rel.ProjectID),
		string(rel.Type),
		rel.Source.ID,
		string(rel.Source.Kind),
		rel.Target.ID,
		string(rel.Target.Kind),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking relation existence: %w", err)
	}
	return true, nil
}

func (r *SQLiteRelationRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Relation, error) {
	query := `SELECT project_id, type, source_id, source_kind, target_id, target_kind, critical
		FROM relations WHERE project_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing relations: %w", err)
	}
	defer rows.Close()

	var relations []*domain.Relation
	for rows.Next() {
		var rel domain.Relation
		var projID, typ, sourceKind, targetKind string
		var critical sql.NullInt64
		if err := rows.Scan(&projID, &typ, &rel.Source.ID, &sourceKind, &rel.Target.ID, &targetKind, &critical); err != nil {
			return nil, fmt.Errorf("scanning relation: %w", err)
		}
		rel.ProjectID = domain.ProjectID(projID)
		rel.Type = domain.RelationType(typ)
		rel.Source.Kind = domain.RelationElementKind(sourceKind)
		rel.Target.Kind = domain.RelationElementKind(targetKind)
		rel.Critical = scanNullableBool(critical)
		relations = append(relations, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relations: %w", err)
	}
	return relations, nil
}
