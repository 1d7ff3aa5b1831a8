package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

const taskColumns = `id, project_id, name, description, location,
		craft_id, assignee_id, work_area_id, status, start_date, end_date`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(t.ID),
		string(t.ProjectID),
		t.Name,
		t.Description,
		t.Location,
		string(t.CraftID),
		nullableID(t.AssigneeID),
		nullableID(t.WorkAreaID),
		string(t.Status),
		nullableTimeToString(t.Start, dateLayout),
		nullableTimeToString(t.End, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, string(id))
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return t, err
}

// ListByProject returns the project's tasks in insertion order.
func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var id, projectID, craftID, status string
	var assigneeID, workAreaID, startStr, endStr sql.NullString

	err := scan(&id, &projectID, &t.Name, &t.Description, &t.Location,
		&craftID, &assigneeID, &workAreaID, &status, &startStr, &endStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.ID = domain.TaskID(id)
	t.ProjectID = domain.ProjectID(projectID)
	t.CraftID = domain.CraftID(craftID)
	t.AssigneeID = scanNullableID[domain.ParticipantID](assigneeID)
	t.WorkAreaID = scanNullableID[domain.WorkAreaID](workAreaID)
	t.Status = domain.TaskStatus(status)
	t.Start = parseNullableTime(startStr, dateLayout)
	t.End = parseNullableTime(endStr, dateLayout)
	return &t, nil
}
