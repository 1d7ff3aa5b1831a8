package service

import (
	"context"
	"time"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/snapshot"
)

type exportService struct {
	stores   *repository.Stores
	observer UseCaseObserver
}

func NewExportService(stores *repository.Stores, observers ...UseCaseObserver) ExportService {
	return &exportService{stores: stores, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, projectID domain.ProjectID, settings snapshot.ExportSettings) (graph *snapshot.ProjectGraph, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"project": string(projectID)},
		})
	}()
	return exportGraph(ctx, s.stores, projectID, settings)
}

// exportGraph builds a fresh graph for the project, honoring the settings.
// It works over any Stores bundle, so the importer can re-export the current
// target inside its own transaction.
func exportGraph(ctx context.Context, stores *repository.Stores, projectID domain.ProjectID, s snapshot.ExportSettings) (*snapshot.ProjectGraph, error) {
	proj, err := stores.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	g := snapshot.NewGraph(proj.ID)
	g.Title = proj.Title
	g.Client = proj.Client
	g.Description = proj.Description
	g.Start = snapshot.NewDate(proj.Start)
	g.End = snapshot.NewDate(proj.End)
	g.ProjectNumber = proj.ProjectNumber
	g.Category = proj.Category
	g.Address = snapshot.Address{
		Street:      proj.Address.Street,
		HouseNumber: proj.Address.HouseNumber,
		City:        proj.Address.City,
		ZipCode:     proj.Address.ZipCode,
	}

	if s.Participants {
		participants, err := stores.Participants.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		for _, p := range participants {
			g.Participants = append(g.Participants, snapshot.Participant{
				ID:        p.ID,
				Status:    p.Status,
				UserID:    p.UserID,
				CompanyID: p.CompanyID,
				Role:      p.Role,
			})
		}
	}

	if s.Crafts {
		crafts, err := stores.Crafts.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		for _, c := range crafts {
			g.Crafts = append(g.Crafts, snapshot.Craft{ID: c.ID, Name: c.Name, Color: c.Color})
		}
	}

	if s.WorkAreas {
		areas, err := stores.WorkAreas.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		for _, w := range areas {
			g.WorkAreas = append(g.WorkAreas, snapshot.WorkArea{ID: w.ID, Name: w.Name})
		}
	}

	milestoneIDs := make(map[string]bool)
	if s.Milestones {
		milestones, err := stores.Milestones.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		for _, m := range milestones {
			milestoneIDs[string(m.ID)] = true
			g.Milestones = append(g.Milestones, snapshot.Milestone{
				ID:          m.ID,
				Name:        m.Name,
				Type:        m.Type,
				Date:        snapshot.NewDate(m.Date),
				Header:      m.Header,
				CraftID:     m.CraftID,
				WorkAreaID:  m.WorkAreaID,
				Description: m.Description,
			})
		}
	}

	taskIDs := make(map[string]bool)
	if s.Tasks {
		tasks, err := stores.Tasks.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			taskIDs[string(t.ID)] = true
			dto := snapshot.Task{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Location:    t.Location,
				CraftID:     t.CraftID,
				WorkAreaID:  t.WorkAreaID,
				Status:      t.Status,
				Start:       snapshot.DateOf(t.Start),
				End:         snapshot.DateOf(t.End),
				DayCards:    []snapshot.DayCard{},
				Topics:      []snapshot.Topic{},
			}
			// An assignee must resolve within the graph, so it is kept only
			// when participants were exported too.
			if s.Participants {
				dto.AssigneeID = t.AssigneeID
			}
			if !s.TaskStatus {
				dto.Status = domain.TaskDraft
			}
			if s.DayCards {
				cards, err := stores.DayCards.ListByTask(ctx, t.ID)
				if err != nil {
					return nil, err
				}
				for _, dc := range cards {
					dto.DayCards = append(dto.DayCards, snapshot.DayCard{
						ID:       dc.ID,
						Date:     snapshot.NewDate(dc.Date),
						Title:    dc.Title,
						Manpower: dc.Manpower,
						Notes:    dc.Notes,
						Status:   dc.Status,
						Reason:   dc.Reason,
					})
				}
			}
			if s.Topics {
				topics, err := stores.Topics.ListByTask(ctx, t.ID)
				if err != nil {
					return nil, err
				}
				for _, topic := range topics {
					topicDTO := snapshot.Topic{
						ID:          topic.ID,
						Criticality: topic.Criticality,
						Description: topic.Description,
						Messages:    []snapshot.Message{},
					}
					messages, err := stores.Messages.ListByTopic(ctx, topic.ID)
					if err != nil {
						return nil, err
					}
					for _, msg := range messages {
						topicDTO.Messages = append(topicDTO.Messages, snapshot.Message{
							ID:           msg.ID,
							Timestamp:    msg.Timestamp,
							AuthorUserID: msg.AuthorUserID,
							Content:      msg.Content,
						})
					}
					dto.Topics = append(dto.Topics, topicDTO)
				}
			}
			g.Tasks = append(g.Tasks, dto)
		}
	}

	if s.Relations {
		relations, err := stores.Relations.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		present := func(e domain.RelationElement) bool {
			switch e.Kind {
			case domain.ElementTask:
				return taskIDs[e.ID]
			case domain.ElementMilestone:
				return milestoneIDs[e.ID]
			}
			return false
		}
		for _, r := range relations {
			// A relation is kept only when both endpoints made it into the
			// graph; anything else is dropped silently.
			if !present(r.Source) || !present(r.Target) {
				continue
			}
			g.Relations = append(g.Relations, snapshot.Relation{
				Type:        r.Type,
				Source:      snapshot.Element{ID: r.Source.ID, Kind: r.Source.Kind},
				Target:      snapshot.Element{ID: r.Target.ID, Kind: r.Target.Kind},
				Criticality: r.Critical,
			})
		}
	}

	return g, nil
}
