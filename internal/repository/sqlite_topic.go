package repository

import (
	"context"
	"fmt"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

// SQLiteTopicRepo implements TopicRepo using a SQLite database.
type SQLiteTopicRepo struct {
	db db.DBTX
}

// NewSQLiteTopicRepo creates a new SQLiteTopicRepo.
func NewSQLiteTopicRepo(conn db.DBTX) *SQLiteTopicRepo {
	return &SQLiteTopicRepo{db: conn}
}

func (r *SQLiteTopicRepo) Create(ctx context.Context, t *domain.Topic) error {
	query := `INSERT INTO topics (id, task_id, criticality, description)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(t.ID),
		string(t.TaskID),
		string(t.Criticality),
		t.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting topic: %w", err)
	}
	return nil
}

func (r *SQLiteTopicRepo) ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.Topic, error) {
	query := `SELECT id, task_id, criticality, description FROM topics WHERE task_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, string(taskID))
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []*domain.Topic
	for rows.Next() {
		var t domain.Topic
		var id, taskIDStr, criticality string
		if err := rows.Scan(&id, &taskIDStr, &criticality, &t.Description); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		t.ID = domain.TopicID(id)
		t.TaskID = domain.TaskID(taskIDStr)
		t.Criticality = domain.TopicCriticality(criticality)
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}
