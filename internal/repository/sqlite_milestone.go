package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

const milestoneColumns = `id, project_id, name, type, date, header,
		craft_id, work_area_id, description, position`

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (` + milestoneColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(m.ID),
		string(m.ProjectID),
		m.Name,
		string(m.Type),
		m.Date.Format(dateLayout),
		boolToInt(m.Header),
		nullableID(m.CraftID),
		nullableID(m.WorkAreaID),
		m.Description,
		m.Position,
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id domain.MilestoneID) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, string(id))
	m, err := scanMilestone(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone: %w", ErrNotFound)
	}
	return m, err
}

// ListByProject returns the project's milestones in their persisted list order.
func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE project_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows.Scan)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func scanMilestone(scan func(dest ...any) error) (*domain.Milestone, error) {
	var m domain.Milestone
	var id, projectID, typ, dateStr string
	var header int
	var craftID, workAreaID sql.NullString

	err := scan(&id, &projectID, &m.Name, &typ, &dateStr, &header,
		&craftID, &workAreaID, &m.Description, &m.Position)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}

	m.ID = domain.MilestoneID(id)
	m.ProjectID = domain.ProjectID(projectID)
	m.Type = domain.MilestoneType(typ)
	m.Header = intToBool(header)
	m.CraftID = scanNullableID[domain.CraftID](craftID)
	m.WorkAreaID = scanNullableID[domain.WorkAreaID](workAreaID)

	var parseErr error
	m.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing milestone date: %w", parseErr)
	}
	return &m, nil
}
