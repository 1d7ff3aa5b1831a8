package snapshot

import (
	"github.com/avollmer/siteplan/internal/domain"
)

// Placeholder entities invented during a merge to satisfy references the
// source graph itself cannot resolve.
const (
	PlaceholderCraftName    = "Placeholder Project Craft"
	PlaceholderCraftColor   = "#d9c200"
	PlaceholderWorkAreaName = "Placeholder Working Area"
)

// MergeStrategy computes the delta between a source graph and the current
// state of a target graph: the set of new entities to create in the target,
// with every identifier remapped. Implementations are pure functions; they
// never touch a store and never fail on dangling references.
type MergeStrategy interface {
	Merge(source, target *ProjectGraph) *ProjectGraph
}

// ImportEverything treats the target as owning none of the source's entities.
// Active participants are still deduplicated against the target by userId,
// because users are addressable across the whole deployment rather than per
// graph.
type ImportEverything struct{}

func (ImportEverything) Merge(source, target *ProjectGraph) *ProjectGraph {
	return mergeGraphs(source, target)
}

// Copy is the policy used by the copy-project orchestration: the target is a
// brand-new empty project, so the algorithm degenerates to remap-everything.
type Copy struct{}

func (Copy) Merge(source, target *ProjectGraph) *ProjectGraph {
	return mergeGraphs(source, target)
}

// mergeGraphs applies the remap steps in strict order; later steps consume
// the id tables built by earlier ones. All remap tables and the memoized
// placeholder factories are scoped to this one call.
func mergeGraphs(source, target *ProjectGraph) *ProjectGraph {
	delta := NewGraph(target.ID)

	// Step 1: participants, deduplicated by userId against the target.
	// Non-active participants are never carried forward.
	participantIDs := make(map[domain.ParticipantID]domain.ParticipantID)
	targetByUser := make(map[domain.UserID]domain.ParticipantID)
	for _, p := range target.Participants {
		if p.IsActive() && p.UserID != nil {
			targetByUser[*p.UserID] = p.ID
		}
	}
	for _, p := range source.Participants {
		if !p.IsActive() {
			continue
		}
		if p.UserID != nil {
			if existing, ok := targetByUser[*p.UserID]; ok {
				participantIDs[p.ID] = existing
				continue
			}
		}
		fresh := domain.NewParticipantID()
		participantIDs[p.ID] = fresh
		out := p
		out.ID = fresh
		delta.Participants = append(delta.Participants, out)
	}

	// Step 2: crafts. A dangling craft reference resolves to one shared
	// placeholder, created on first need.
	craftIDs := make(map[domain.CraftID]domain.CraftID)
	for _, c := range source.Crafts {
		fresh := domain.NewCraftID()
		craftIDs[c.ID] = fresh
		out := c
		out.ID = fresh
		delta.Crafts = append(delta.Crafts, out)
	}
	var placeholderCraft *domain.CraftID
	resolveCraft := func(id domain.CraftID) domain.CraftID {
		if mapped, ok := craftIDs[id]; ok {
			return mapped
		}
		if placeholderCraft == nil {
			fresh := domain.NewCraftID()
			delta.Crafts = append(delta.Crafts, Craft{
				ID:    fresh,
				Name:  PlaceholderCraftName,
				Color: PlaceholderCraftColor,
			})
			placeholderCraft = &fresh
		}
		return *placeholderCraft
	}
	resolveCraftRef := func(id *domain.CraftID) *domain.CraftID {
		if id == nil {
			return nil
		}
		mapped := resolveCraft(*id)
		return &mapped
	}

	// Step 3: work areas, symmetric to crafts. An absent work area stays
	// absent; only a dangling reference triggers the placeholder.
	workAreaIDs := make(map[domain.WorkAreaID]domain.WorkAreaID)
	for _, w := range source.WorkAreas {
		fresh := domain.NewWorkAreaID()
		workAreaIDs[w.ID] = fresh
		out := w
		out.ID = fresh
		delta.WorkAreas = append(delta.WorkAreas, out)
	}
	var placeholderWorkArea *domain.WorkAreaID
	resolveWorkAreaRef := func(id *domain.WorkAreaID) *domain.WorkAreaID {
		if id == nil {
			return nil
		}
		if mapped, ok := workAreaIDs[*id]; ok {
			return &mapped
		}
		if placeholderWorkArea == nil {
			fresh := domain.NewWorkAreaID()
			delta.WorkAreas = append(delta.WorkAreas, WorkArea{
				ID:   fresh,
				Name: PlaceholderWorkAreaName,
			})
			placeholderWorkArea = &fresh
		}
		return placeholderWorkArea
	}

	// Step 4: milestones.
	milestoneIDs := make(map[domain.MilestoneID]domain.MilestoneID)
	for _, m := range source.Milestones {
		fresh := domain.NewMilestoneID()
		milestoneIDs[m.ID] = fresh
		out := m
		out.ID = fresh
		out.CraftID = resolveCraftRef(m.CraftID)
		out.WorkAreaID = resolveWorkAreaRef(m.WorkAreaID)
		delta.Milestones = append(delta.Milestones, out)
	}

	// Step 5: tasks with nested day cards, then step 6: topics and messages.
	// An assignee whose participant was not carried forward is stripped.
	taskIDs := make(map[domain.TaskID]domain.TaskID)
	for _, t := range source.Tasks {
		fresh := domain.NewTaskID()
		taskIDs[t.ID] = fresh
		out := t
		out.ID = fresh
		out.CraftID = resolveCraft(t.CraftID)
		out.WorkAreaID = resolveWorkAreaRef(t.WorkAreaID)
		out.AssigneeID = nil
		if t.AssigneeID != nil {
			if mapped, ok := participantIDs[*t.AssigneeID]; ok {
				out.AssigneeID = &mapped
			}
		}
		out.DayCards = make([]DayCard, len(t.DayCards))
		for i, dc := range t.DayCards {
			out.DayCards[i] = dc
			out.DayCards[i].ID = domain.NewDayCardID()
		}
		out.Topics = make([]Topic, len(t.Topics))
		for i, topic := range t.Topics {
			out.Topics[i] = topic
			out.Topics[i].ID = domain.NewTopicID()
			out.Topics[i].Messages = make([]Message, len(topic.Messages))
			for j, msg := range topic.Messages {
				out.Topics[i].Messages[j] = msg
				out.Topics[i].Messages[j].ID = domain.NewMessageID()
			}
		}
		delta.Tasks = append(delta.Tasks, out)
	}

	// Step 7: relations, endpoints rewritten through the task and milestone
	// tables. A relation whose endpoint was not emitted is dropped silently.
	remapElement := func(e Element) (Element, bool) {
		switch e.Kind {
		case domain.ElementTask:
			if mapped, ok := taskIDs[domain.TaskID(e.ID)]; ok {
				return Element{ID: string(mapped), Kind: e.Kind}, true
			}
		case domain.ElementMilestone:
			if mapped, ok := milestoneIDs[domain.MilestoneID(e.ID)]; ok {
				return Element{ID: string(mapped), Kind: e.Kind}, true
			}
		}
		return Element{}, false
	}
	for _, r := range source.Relations {
		src, okSrc := remapElement(r.Source)
		tgt, okTgt := remapElement(r.Target)
		if !okSrc || !okTgt {
			continue
		}
		out := r
		out.Source = src
		out.Target = tgt
		delta.Relations = append(delta.Relations, out)
	}

	return delta
}
