package service

import (
	"context"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/events"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/snapshot"
)

type copyService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCopyService(uow db.UnitOfWork, observers ...UseCaseObserver) CopyService {
	return &copyService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Copy clones sourceID into a brand-new project. The whole export, merge and
// import sequence runs in one transaction, bracketed by CopyStarted and
// CopyFinished events, so nothing becomes visible until commit.
func (s *copyService) Copy(ctx context.Context, sourceID domain.ProjectID, params snapshot.CopyParameters) (result *CopyResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": string(sourceID), "name": params.ProjectName}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "copy-project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	// Fail on malformed parameters before touching the store.
	if err = params.Validate(); err != nil {
		return nil, err
	}

	res := CopyResult{ProjectID: domain.NewProjectID()}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stores := repository.NewStores(tx)
		writer := events.NewWriter(tx)

		source, err := exportGraph(ctx, stores, sourceID, params.ExportSettings())
		if err != nil {
			return err
		}
		applyAssigneePolicy(source, params.KeepTaskAssignee)

		if err := writer.CopyStarted(ctx, res.ProjectID, sourceID); err != nil {
			return err
		}

		now := time.Now().UTC()
		target := &domain.Project{
			ID:            res.ProjectID,
			Title:         params.ProjectName,
			Client:        source.Client,
			Description:   source.Description,
			Start:         source.Start.Time,
			End:           source.End.Time,
			ProjectNumber: source.ProjectNumber,
			Category:      source.Category,
			Address: domain.Address{
				Street:      source.Address.Street,
				HouseNumber: source.Address.HouseNumber,
				City:        source.Address.City,
				ZipCode:     source.Address.ZipCode,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := stores.Projects.Create(ctx, target); err != nil {
			return err
		}

		current, err := exportGraph(ctx, stores, target.ID, snapshot.ExportEverything())
		if err != nil {
			return err
		}
		delta := snapshot.Copy{}.Merge(source, current)

		res.Result = ImportResult{ProjectID: target.ID, ProjectCreated: true}
		if err := createGraph(ctx, stores, writer, target.ID, delta, &res.Result); err != nil {
			return err
		}
		fields["tasks"] = res.Result.Tasks

		return writer.CopyFinished(ctx, res.ProjectID, sourceID)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// applyAssigneePolicy strips task assignees that must not be carried forward:
// all of them when assignees are not kept, and always those whose participant
// is no longer active in the source.
func applyAssigneePolicy(source *snapshot.ProjectGraph, keep bool) {
	active := make(map[domain.ParticipantID]bool)
	for _, p := range source.Participants {
		if p.IsActive() {
			active[p.ID] = true
		}
	}
	for i := range source.Tasks {
		t := &source.Tasks[i]
		if t.AssigneeID == nil {
			continue
		}
		if !keep || !active[*t.AssigneeID] {
			t.AssigneeID = nil
		}
	}
}
