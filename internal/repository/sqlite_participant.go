package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

const participantColumns = `id, project_id, status, user_id, company_id, role`

// SQLiteParticipantRepo implements ParticipantRepo using a SQLite database.
type SQLiteParticipantRepo struct {
	db db.DBTX
}

// NewSQLiteParticipantRepo creates a new SQLiteParticipantRepo.
func NewSQLiteParticipantRepo(conn db.DBTX) *SQLiteParticipantRepo {
	return &SQLiteParticipantRepo{db: conn}
}

func (r *SQLiteParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO participants (` + participantColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	var role interface{}
	if p.Role != nil {
		role = string(*p.Role)
	}
	_, err := r.db.ExecContext(ctx, query,
		string(p.ID),
		string(p.ProjectID),
		string(p.Status),
		nullableID(p.UserID),
		nullableID(p.CompanyID),
		role,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("participant for user in project %s: %w", p.ProjectID, ErrDuplicate)
		}
		return fmt.Errorf("inserting participant: %w", err)
	}
	return nil
}

func (r *SQLiteParticipantRepo) GetByID(ctx context.Context, id domain.ParticipantID) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, string(id))
	p, err := scanParticipant(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("participant: %w", ErrNotFound)
	}
	return p, err
}

func (r *SQLiteParticipantRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE project_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, string(projectID))
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	defer rows.Close()

	var participants []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows.Scan)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating participants: %w", err)
	}
	return participants, nil
}

func scanParticipant(scan func(dest ...any) error) (*domain.Participant, error) {
	var p domain.Participant
	var id, projectID, status string
	var userID, companyID, role sql.NullString

	err := scan(&id, &projectID, &status, &userID, &companyID, &role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning participant: %w", err)
	}

	p.ID = domain.ParticipantID(id)
	p.ProjectID = domain.ProjectID(projectID)
	p.Status = domain.ParticipantStatus(status)
	p.UserID = scanNullableID[domain.UserID](userID)
	p.CompanyID = scanNullableID[domain.CompanyID](companyID)
	if role.Valid && role.String != "" {
		r := domain.ParticipantRole(role.String)
		p.Role = &r
	}
	return &p, nil
}
