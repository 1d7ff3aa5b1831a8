package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/events"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/snapshot"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	graph, err := snapshot.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, graph, nil)
}

func (s *importService) Import(ctx context.Context, graph *snapshot.ProjectGraph, strategy snapshot.MergeStrategy) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"project": string(graph.ID)},
		})
	}()

	if strategy == nil {
		strategy = snapshot.ImportEverything{}
	}

	res := ImportResult{ProjectID: graph.ID}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stores := repository.NewStores(tx)
		writer := events.NewWriter(tx)

		exists, err := stores.Projects.Exists(ctx, graph.ID)
		if err != nil {
			return err
		}

		delta := graph
		if !exists {
			// Empty target: create the project from the graph's scalar
			// attributes, then write the children as-is.
			if err := createProjectFromGraph(ctx, stores, writer, graph); err != nil {
				return err
			}
			res.ProjectCreated = true
		} else {
			// Existing target: merge against its current state and write
			// only the delta.
			current, err := exportGraph(ctx, stores, graph.ID, snapshot.ExportEverything())
			if err != nil {
				return err
			}
			delta = strategy.Merge(graph, current)
		}

		return createGraph(ctx, stores, writer, graph.ID, delta, &res)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func createProjectFromGraph(ctx context.Context, stores *repository.Stores, writer *events.Writer, graph *snapshot.ProjectGraph) error {
	now := time.Now().UTC()
	proj := &domain.Project{
		ID:            graph.ID,
		Title:         graph.Title,
		Client:        graph.Client,
		Description:   graph.Description,
		Start:         graph.Start.Time,
		End:           graph.End.Time,
		ProjectNumber: graph.ProjectNumber,
		Category:      graph.Category,
		Address: domain.Address{
			Street:      graph.Address.Street,
			HouseNumber: graph.Address.HouseNumber,
			City:        graph.Address.City,
			ZipCode:     graph.Address.ZipCode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := stores.Projects.Create(ctx, proj); err != nil {
		return err
	}
	return writer.Created(ctx, proj.ID, "project", string(proj.ID))
}

// graphContext tracks what already exists in the target plus what this import
// has created so far, for reference validation and position offsets.
type graphContext struct {
	participants map[domain.ParticipantID]bool
	crafts       map[domain.CraftID]bool
	workAreas    map[domain.WorkAreaID]bool
	schedules    map[string]schedule // keyed by element id, tasks and milestones
	tasks        map[domain.TaskID]bool
	milestones   map[domain.MilestoneID]bool

	craftOffset     int
	workAreaOffset  int
	milestoneOffset int
}

type schedule struct {
	start time.Time
	end   time.Time
	known bool
}

func loadGraphContext(ctx context.Context, stores *repository.Stores, projectID domain.ProjectID) (*graphContext, error) {
	gc := &graphContext{
		participants: make(map[domain.ParticipantID]bool),
		crafts:       make(map[domain.CraftID]bool),
		workAreas:    make(map[domain.WorkAreaID]bool),
		schedules:    make(map[string]schedule),
		tasks:        make(map[domain.TaskID]bool),
		milestones:   make(map[domain.MilestoneID]bool),
	}

	participants, err := stores.Participants.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		gc.participants[p.ID] = true
	}

	crafts, err := stores.Crafts.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, c := range crafts {
		gc.crafts[c.ID] = true
	}
	gc.craftOffset = len(crafts)

	areas, err := stores.WorkAreas.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, w := range areas {
		gc.workAreas[w.ID] = true
	}
	gc.workAreaOffset = len(areas)

	milestones, err := stores.Milestones.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, m := range milestones {
		gc.milestones[m.ID] = true
		gc.schedules[string(m.ID)] = schedule{start: m.Date, end: m.Date, known: true}
	}
	gc.milestoneOffset = len(milestones)

	tasks, err := stores.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		gc.tasks[t.ID] = true
		if t.HasSchedule() {
			gc.schedules[string(t.ID)] = schedule{start: *t.Start, end: *t.End, known: true}
		}
	}

	return gc, nil
}

// createGraph writes the delta into the project in strict dependency order:
// participants, crafts, work areas, milestones, tasks with their children,
// relations last.
func createGraph(ctx context.Context, stores *repository.Stores, writer *events.Writer, projectID domain.ProjectID, delta *snapshot.ProjectGraph, res *ImportResult) error {
	gc, err := loadGraphContext(ctx, stores, projectID)
	if err != nil {
		return err
	}

	for _, p := range delta.Participants {
		err := stores.Participants.Create(ctx, &domain.Participant{
			ID:        p.ID,
			ProjectID: projectID,
			Status:    p.Status,
			UserID:    p.UserID,
			CompanyID: p.CompanyID,
			Role:      p.Role,
		})
		if err != nil {
			return fmt.Errorf("participant %s: %w", p.ID, err)
		}
		gc.participants[p.ID] = true
		res.Participants++
		if err := writer.Created(ctx, projectID, "participant", string(p.ID)); err != nil {
			return err
		}
	}

	for i, c := range delta.Crafts {
		err := stores.Crafts.Create(ctx, &domain.Craft{
			ID:        c.ID,
			ProjectID: projectID,
			Name:      c.Name,
			Color:     c.Color,
			Position:  gc.craftOffset + i,
		})
		if err != nil {
			return fmt.Errorf("craft %q: %w", c.Name, err)
		}
		gc.crafts[c.ID] = true
		res.Crafts++
		if err := writer.Created(ctx, projectID, "craft", string(c.ID)); err != nil {
			return err
		}
	}

	for i, w := range delta.WorkAreas {
		err := stores.WorkAreas.Create(ctx, &domain.WorkArea{
			ID:        w.ID,
			ProjectID: projectID,
			Name:      w.Name,
			Position:  gc.workAreaOffset + i,
		})
		if err != nil {
			return fmt.Errorf("work area %q: %w", w.Name, err)
		}
		gc.workAreas[w.ID] = true
		res.WorkAreas++
		if err := writer.Created(ctx, projectID, "work_area", string(w.ID)); err != nil {
			return err
		}
	}

	for i, m := range delta.Milestones {
		if m.CraftID != nil && !gc.crafts[*m.CraftID] {
			return fmt.Errorf("milestone %q craft %s: %w", m.Name, *m.CraftID, repository.ErrNotFound)
		}
		if m.WorkAreaID != nil && !gc.workAreas[*m.WorkAreaID] {
			return fmt.Errorf("milestone %q work area %s: %w", m.Name, *m.WorkAreaID, repository.ErrNotFound)
		}
		err := stores.Milestones.Create(ctx, &domain.Milestone{
			ID:          m.ID,
			ProjectID:   projectID,
			Name:        m.Name,
			Type:        m.Type,
			Date:        m.Date.Time,
			Header:      m.Header,
			CraftID:     m.CraftID,
			WorkAreaID:  m.WorkAreaID,
			Description: m.Description,
			Position:    gc.milestoneOffset + i,
		})
		if err != nil {
			return fmt.Errorf("milestone %q: %w", m.Name, err)
		}
		gc.milestones[m.ID] = true
		gc.schedules[string(m.ID)] = schedule{start: m.Date.Time, end: m.Date.Time, known: true}
		res.Milestones++
		if err := writer.Created(ctx, projectID, "milestone", string(m.ID)); err != nil {
			return err
		}
	}

	for _, t := range delta.Tasks {
		if err := createTask(ctx, stores, writer, projectID, gc, t, res); err != nil {
			return err
		}
	}

	for _, r := range delta.Relations {
		if err := createRelation(ctx, stores, writer, projectID, gc, r, res); err != nil {
			return err
		}
	}

	return nil
}

func createTask(ctx context.Context, stores *repository.Stores, writer *events.Writer, projectID domain.ProjectID, gc *graphContext, t snapshot.Task, res *ImportResult) error {
	if !gc.crafts[t.CraftID] {
		return fmt.Errorf("task %q craft %s: %w", t.Name, t.CraftID, repository.ErrNotFound)
	}
	if t.WorkAreaID != nil && !gc.workAreas[*t.WorkAreaID] {
		return fmt.Errorf("task %q work area %s: %w", t.Name, *t.WorkAreaID, repository.ErrNotFound)
	}
	if t.AssigneeID != nil && !gc.participants[*t.AssigneeID] {
		return fmt.Errorf("task %q assignee %s: %w", t.Name, *t.AssigneeID, repository.ErrNotFound)
	}

	err := stores.Tasks.Create(ctx, &domain.Task{
		ID:          t.ID,
		ProjectID:   projectID,
		Name:        t.Name,
		Description: t.Description,
		Location:    t.Location,
		CraftID:     t.CraftID,
		AssigneeID:  t.AssigneeID,
		WorkAreaID:  t.WorkAreaID,
		Status:      t.Status,
		Start:       snapshot.TimeOf(t.Start),
		End:         snapshot.TimeOf(t.End),
	})
	if err != nil {
		return fmt.Errorf("task %q: %w", t.Name, err)
	}
	gc.tasks[t.ID] = true
	if t.HasSchedule() {
		gc.schedules[string(t.ID)] = schedule{start: t.Start.Time, end: t.End.Time, known: true}
	}
	res.Tasks++
	if err := writer.Created(ctx, projectID, "task", string(t.ID)); err != nil {
		return err
	}

	for _, dc := range t.DayCards {
		err := stores.DayCards.Create(ctx, &domain.DayCard{
			ID:       dc.ID,
			TaskID:   t.ID,
			Date:     dc.Date.Time,
			Title:    dc.Title,
			Manpower: dc.Manpower,
			Notes:    dc.Notes,
			Status:   dc.Status,
			Reason:   dc.Reason,
		})
		if err != nil {
			return fmt.Errorf("day card %q: %w", dc.Title, err)
		}
		res.DayCards++
		if err := writer.Created(ctx, projectID, "day_card", string(dc.ID)); err != nil {
			return err
		}
	}

	for _, topic := range t.Topics {
		err := stores.Topics.Create(ctx, &domain.Topic{
			ID:          topic.ID,
			TaskID:      t.ID,
			Criticality: topic.Criticality,
			Description: topic.Description,
		})
		if err != nil {
			return fmt.Errorf("topic %s: %w", topic.ID, err)
		}
		res.Topics++
		if err := writer.Created(ctx, projectID, "topic", string(topic.ID)); err != nil {
			return err
		}
		for _, msg := range topic.Messages {
			err := stores.Messages.Create(ctx, &domain.Message{
				ID:           msg.ID,
				TopicID:      topic.ID,
				Timestamp:    msg.Timestamp,
				AuthorUserID: msg.AuthorUserID,
				Content:      msg.Content,
			})
			if err != nil {
				return fmt.Errorf("message %s: %w", msg.ID, err)
			}
			res.Messages++
			if err := writer.Created(ctx, projectID, "message", string(msg.ID)); err != nil {
				return err
			}
		}
	}

	return nil
}

func createRelation(ctx context.Context, stores *repository.Stores, writer *events.Writer, projectID domain.ProjectID, gc *graphContext, r snapshot.Relation, res *ImportResult) error {
	if r.Source == r.Target {
		return fmt.Errorf("relation %s -> %s relates an element to itself: %w", r.Source.ID, r.Target.ID, ErrInvalidRelation)
	}
	if r.Type == domain.RelationPartOf &&
		(r.Source.Kind != domain.ElementTask || r.Target.Kind != domain.ElementMilestone) {
		return fmt.Errorf("PART_OF must nest a task under a milestone: %w", ErrInvalidRelation)
	}

	exists := func(e snapshot.Element) bool {
		switch e.Kind {
		case domain.ElementTask:
			return gc.tasks[domain.TaskID(e.ID)]
		case domain.ElementMilestone:
			return gc.milestones[domain.MilestoneID(e.ID)]
		}
		return false
	}
	if !exists(r.Source) {
		return fmt.Errorf("relation source %s %s: %w", r.Source.Kind, r.Source.ID, repository.ErrNotFound)
	}
	if !exists(r.Target) {
		return fmt.Errorf("relation target %s %s: %w", r.Target.Kind, r.Target.ID, repository.ErrNotFound)
	}

	rel := &domain.Relation{
		ProjectID: projectID,
		Type:      r.Type,
		Source:    domain.RelationElement{ID: r.Source.ID, Kind: r.Source.Kind},
		Target:    domain.RelationElement{ID: r.Target.ID, Kind: r.Target.Kind},
		Critical:  r.Criticality,
	}

	duplicate, err := stores.Relations.Exists(ctx, rel)
	if err != nil {
		return err
	}
	if duplicate {
		return fmt.Errorf("relation %s %s -> %s: %w", rel.Type, rel.Source.ID, rel.Target.ID, repository.ErrDuplicate)
	}

	if rel.Type == domain.RelationFinishToStart {
		critical, err := computeCriticality(gc, r)
		if err != nil {
			return err
		}
		rel.Critical = &critical
	}

	if err := stores.Relations.Create(ctx, rel); err != nil {
		return fmt.Errorf("relation %s -> %s: %w", rel.Source.ID, rel.Target.ID, err)
	}
	res.Relations++
	return writer.Created(ctx, projectID, "relation", rel.Source.ID+"->"+rel.Target.ID)
}

// computeCriticality decides whether a FINISH_TO_START dependency is already
// violated: the target element starting strictly before the source finishes.
// Task endpoints must carry a schedule; milestones always do (their date).
func computeCriticality(gc *graphContext, r snapshot.Relation) (bool, error) {
	src, ok := gc.schedules[r.Source.ID]
	if !ok || !src.known {
		return false, fmt.Errorf("relation source task %s: %w", r.Source.ID, ErrScheduleMissing)
	}
	tgt, ok := gc.schedules[r.Target.ID]
	if !ok || !tgt.known {
		return false, fmt.Errorf("relation target task %s: %w", r.Target.ID, ErrScheduleMissing)
	}
	return tgt.start.Before(src.end), nil
}
