package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, topic_id, timestamp, author_user_id, content)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(m.ID),
		string(m.TopicID),
		m.Timestamp.UTC().Format(time.RFC3339),
		string(m.AuthorUserID),
		m.Content,
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// ListByTopic returns the topic's messages ordered by timestamp.
func (r *SQLiteMessageRepo) ListByTopic(ctx context.Context, topicID domain.TopicID) ([]*domain.Message, error) {
	query := `SELECT id, topic_id, timestamp, author_user_id, content
		FROM messages WHERE topic_id = ? ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, query, string(topicID))
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		var id, topicIDStr, tsStr, author string
		if err := rows.Scan(&id, &topicIDStr, &tsStr, &author, &m.Content); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.ID = domain.MessageID(id)
		m.TopicID = domain.TopicID(topicIDStr)
		m.AuthorUserID = domain.UserID(author)
		m.Timestamp, err = time.Parse(time.RFC3339, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing message timestamp: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}
