// Package events persists lifecycle and entity-creation events in the
// event_log table. The writer appends through the caller's DBTX, so events
// written inside a transaction stay invisible until that transaction commits.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

const (
	TypeCopyStarted  = "project.copy_started"
	TypeCopyFinished = "project.copy_finished"
	TypeCreated      = "created"
)

type Event struct {
	ID           int64
	ProjectID    domain.ProjectID
	Type         string
	ResourceType string
	ResourceID   string
	Payload      string
	CreatedAt    time.Time
}

type Writer struct {
	db db.DBTX
}

func NewWriter(conn db.DBTX) *Writer {
	return &Writer{db: conn}
}

func (w *Writer) Append(ctx context.Context, e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO event_log (project_id, event_type, resource_type, resource_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(e.ProjectID),
		e.Type,
		e.ResourceType,
		e.ResourceID,
		e.Payload,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending event %s: %w", e.Type, err)
	}
	return nil
}

// CopyStarted records the start of a copy into projectID, naming the source.
func (w *Writer) CopyStarted(ctx context.Context, projectID, sourceID domain.ProjectID) error {
	return w.Append(ctx, Event{
		ProjectID:    projectID,
		Type:         TypeCopyStarted,
		ResourceType: "project",
		ResourceID:   string(sourceID),
	})
}

func (w *Writer) CopyFinished(ctx context.Context, projectID, sourceID domain.ProjectID) error {
	return w.Append(ctx, Event{
		ProjectID:    projectID,
		Type:         TypeCopyFinished,
		ResourceType: "project",
		ResourceID:   string(sourceID),
	})
}

// Created records the creation of one entity belonging to projectID.
func (w *Writer) Created(ctx context.Context, projectID domain.ProjectID, resourceType, resourceID string) error {
	return w.Append(ctx, Event{
		ProjectID:    projectID,
		Type:         resourceType + "." + TypeCreated,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	})
}

// ListByProject returns the project's events in append order.
func (w *Writer) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]Event, error) {
	rows, err := w.db.QueryContext(ctx,
		`SELECT id, project_id, event_type, resource_type, resource_id, payload, created_at
		FROM event_log WHERE project_id = ? ORDER BY id`,
		string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var projID, createdAt string
		if err := rows.Scan(&e.ID, &projID, &e.Type, &e.ResourceType, &e.ResourceID, &e.Payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.ProjectID = domain.ProjectID(projID)
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamp: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return out, nil
}
