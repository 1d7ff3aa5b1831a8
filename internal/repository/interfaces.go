package repository

import (
	"context"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	Exists(ctx context.Context, id domain.ProjectID) (bool, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id domain.ProjectID) error
}

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id domain.ParticipantID) (*domain.Participant, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Participant, error)
}

type CraftRepo interface {
	Create(ctx context.Context, c *domain.Craft) error
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Craft, error)
}

type WorkAreaRepo interface {
	Create(ctx context.Context, w *domain.WorkArea) error
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.WorkArea, error)
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id domain.MilestoneID) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Milestone, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error)
}

type DayCardRepo interface {
	Create(ctx context.Context, d *domain.DayCard) error
	ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.DayCard, error)
}

type TopicRepo interface {
	Create(ctx context.Context, t *domain.Topic) error
	ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.Topic, error)
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByTopic(ctx context.Context, topicID domain.TopicID) ([]*domain.Message, error)
}

type RelationRepo interface {
	Create(ctx context.Context, r *domain.Relation) error
	Exists(ctx context.Context, r *domain.Relation) (bool, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Relation, error)
}

// Stores bundles one repository per entity type over a shared connection or
// transaction. The importer builds a tx-scoped Stores inside its unit of
// work; read-only callers build one over the plain *sql.DB.
type Stores struct {
	Projects     ProjectRepo
	Participants ParticipantRepo
	Crafts       CraftRepo
	WorkAreas    WorkAreaRepo
	Milestones   MilestoneRepo
	Tasks        TaskRepo
	DayCards     DayCardRepo
	Topics       TopicRepo
	Messages     MessageRepo
	Relations    RelationRepo
}

// NewStores creates a Stores bundle over the given connection.
func NewStores(conn db.DBTX) *Stores {
	return &Stores{
		Projects:     NewSQLiteProjectRepo(conn),
		Participants: NewSQLiteParticipantRepo(conn),
		Crafts:       NewSQLiteCraftRepo(conn),
		WorkAreas:    NewSQLiteWorkAreaRepo(conn),
		Milestones:   NewSQLiteMilestoneRepo(conn),
		Tasks:        NewSQLiteTaskRepo(conn),
		DayCards:     NewSQLiteDayCardRepo(conn),
		Topics:       NewSQLiteTopicRepo(conn),
		Messages:     NewSQLiteMessageRepo(conn),
		Relations:    NewSQLiteRelationRepo(conn),
	}
}
