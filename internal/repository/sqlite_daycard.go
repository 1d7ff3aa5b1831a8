package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

const dayCardColumns = `id, task_id, date, title, manpower, notes, status, reason`

// SQLiteDayCardRepo implements DayCardRepo using a SQLite database.
type SQLiteDayCardRepo struct {
	db db.DBTX
}

// NewSQLiteDayCardRepo creates a new SQLiteDayCardRepo.
func NewSQLiteDayCardRepo(conn db.DBTX) *SQLiteDayCardRepo {
	return &SQLiteDayCardRepo{db: conn}
}

func (r *SQLiteDayCardRepo) Create(ctx context.Context, d *domain.DayCard) error {
	query := `INSERT INTO day_cards (` + dayCardColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(d.ID),
		string(d.TaskID),
		d.Date.Format(dateLayout),
		d.Title,
		d.Manpower,
		d.Notes,
		string(d.Status),
		d.Reason,
	)
	if err != nil {
		return fmt.Errorf("inserting day card: %w", err)
	}
	return nil
}

// ListByTask returns the task's day cards ordered by date.
func (r *SQLiteDayCardRepo) ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.DayCard, error) {
	query := `SELECT ` + dayCardColumns + ` FROM day_cards WHERE task_id = ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, string(taskID))
	if err != nil {
		return nil, fmt.Errorf("listing day cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.DayCard
	for rows.Next() {
		var d domain.DayCard
		var id, taskIDStr, dateStr, status string
		if err := rows.Scan(&id, &taskIDStr, &dateStr, &d.Title, &d.Manpower, &d.Notes, &status, &d.Reason); err != nil {
			return nil, fmt.Errorf("scanning day card: %w", err)
		}
		d.ID = domain.DayCardID(id)
		d.TaskID = domain.TaskID(taskIDStr)
		d.Status = domain.DayCardStatus(status)
		d.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing day card date: %w", err)
		}
		cards = append(cards, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day cards: %w", err)
	}
	return cards, nil
}
