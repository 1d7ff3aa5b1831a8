package service

import (
	"context"
	"errors"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/snapshot"
)

var (
	// ErrScheduleMissing is returned when a FINISH_TO_START relation names a
	// task endpoint without schedule dates. Criticality cannot be computed
	// without one, so the whole import aborts.
	ErrScheduleMissing = errors.New("task schedule missing")

	// ErrInvalidRelation is returned for structurally invalid relations:
	// self-relations and PART_OF tuples that are not task-under-milestone.
	ErrInvalidRelation = errors.New("invalid relation")
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id domain.ProjectID) error
}

type ExportService interface {
	Export(ctx context.Context, projectID domain.ProjectID, settings snapshot.ExportSettings) (*snapshot.ProjectGraph, error)
}

// ImportResult holds the outcome of one import: whether the target project
// itself was created and how many entities of each kind were written.
type ImportResult struct {
	ProjectID      domain.ProjectID
	ProjectCreated bool
	Participants   int
	Crafts         int
	WorkAreas      int
	Milestones     int
	Tasks          int
	DayCards       int
	Topics         int
	Messages       int
	Relations      int
}

type ImportService interface {
	// Import writes the graph into the project it identifies, inside one
	// transaction. A nil strategy defaults to snapshot.ImportEverything.
	Import(ctx context.Context, graph *snapshot.ProjectGraph, strategy snapshot.MergeStrategy) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

type CopyResult struct {
	ProjectID domain.ProjectID
	Result    ImportResult
}

type CopyService interface {
	Copy(ctx context.Context, sourceID domain.ProjectID, params snapshot.CopyParameters) (*CopyResult, error)
}
