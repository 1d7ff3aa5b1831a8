package snapshot

import (
	"testing"
	"time"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeParticipant(user domain.UserID) Participant {
	company := domain.CompanyID("company-1")
	role := domain.RoleFM
	return Participant{
		ID:        domain.NewParticipantID(),
		Status:    domain.ParticipantActive,
		UserID:    &user,
		CompanyID: &company,
		Role:      &role,
	}
}

func graphTask(name string, craftID domain.CraftID) Task {
	return Task{
		ID:       domain.NewTaskID(),
		Name:     name,
		CraftID:  craftID,
		Status:   domain.TaskOpen,
		DayCards: []DayCard{},
		Topics:   []Topic{},
	}
}

func TestMerge_EmptySourceYieldsEmptyDelta(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	target := NewGraph(domain.NewProjectID())

	delta := ImportEverything{}.Merge(source, target)

	assert.Empty(t, delta.Participants)
	assert.Empty(t, delta.Crafts)
	assert.Empty(t, delta.WorkAreas)
	assert.Empty(t, delta.Milestones)
	assert.Empty(t, delta.Tasks)
	assert.Empty(t, delta.Relations)
	assert.Equal(t, target.ID, delta.ID)
}

func TestMerge_ParticipantDedupByUserID(t *testing.T) {
	user := domain.UserID("shared-user")
	source := NewGraph(domain.NewProjectID())
	sourceParticipant := activeParticipant(user)
	source.Participants = []Participant{sourceParticipant}

	target := NewGraph(domain.NewProjectID())
	existing := activeParticipant(user)
	target.Participants = []Participant{existing}

	craft := Craft{ID: domain.NewCraftID(), Name: "Concrete", Color: "#112233"}
	source.Crafts = []Craft{craft}
	task := graphTask("Pour slab", craft.ID)
	task.AssigneeID = &sourceParticipant.ID
	source.Tasks = []Task{task}

	delta := ImportEverything{}.Merge(source, target)

	// No duplicate participant; the existing target id is the remap target.
	assert.Empty(t, delta.Participants)
	require.Len(t, delta.Tasks, 1)
	require.NotNil(t, delta.Tasks[0].AssigneeID)
	assert.Equal(t, existing.ID, *delta.Tasks[0].AssigneeID)
}

func TestMerge_NewParticipantGetsFreshID(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	p := activeParticipant("new-user")
	source.Participants = []Participant{p}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Participants, 1)
	assert.NotEqual(t, p.ID, delta.Participants[0].ID)
	assert.Equal(t, p.UserID, delta.Participants[0].UserID)
	assert.Equal(t, p.CompanyID, delta.Participants[0].CompanyID)
	assert.Equal(t, p.Role, delta.Participants[0].Role)
}

func TestMerge_NonActiveParticipantsNeverMerged(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	user := domain.UserID("gone-user")
	source.Participants = []Participant{
		{ID: domain.NewParticipantID(), Status: domain.ParticipantInvited},
		{ID: domain.NewParticipantID(), Status: domain.ParticipantInactive, UserID: &user},
	}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))
	assert.Empty(t, delta.Participants)
}

func TestMerge_CraftsRemappedWithFreshIDs(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{
		{ID: domain.NewCraftID(), Name: "Concrete", Color: "#101010"},
		{ID: domain.NewCraftID(), Name: "Steel", Color: "#202020"},
	}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Crafts, 2)
	assert.Equal(t, "Concrete", delta.Crafts[0].Name)
	assert.Equal(t, "Steel", delta.Crafts[1].Name)
	assert.NotEqual(t, source.Crafts[0].ID, delta.Crafts[0].ID)
	assert.NotEqual(t, source.Crafts[1].ID, delta.Crafts[1].ID)
}

func TestMerge_PlaceholderCraftSharedWithinOneCall(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	// Two tasks referencing two different craft ids, neither present in
	// source's (empty) craft list.
	source.Tasks = []Task{
		graphTask("One", domain.NewCraftID()),
		graphTask("Two", domain.NewCraftID()),
	}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Crafts, 1)
	assert.Equal(t, PlaceholderCraftName, delta.Crafts[0].Name)
	assert.Equal(t, PlaceholderCraftColor, delta.Crafts[0].Color)
	require.Len(t, delta.Tasks, 2)
	assert.Equal(t, delta.Crafts[0].ID, delta.Tasks[0].CraftID)
	assert.Equal(t, delta.Crafts[0].ID, delta.Tasks[1].CraftID)
}

func TestMerge_PlaceholderNotSharedAcrossCalls(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	source.Tasks = []Task{graphTask("One", domain.NewCraftID())}

	first := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))
	second := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, first.Crafts, 1)
	require.Len(t, second.Crafts, 1)
	assert.NotEqual(t, first.Crafts[0].ID, second.Crafts[0].ID)
}

func TestMerge_WorkAreaPlaceholderOnlyForDanglingReference(t *testing.T) {
	missing := domain.NewWorkAreaID()
	craft := Craft{ID: domain.NewCraftID(), Name: "Paint", Color: "#303030"}

	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}
	dangling := graphTask("Dangling", craft.ID)
	dangling.WorkAreaID = &missing
	unset := graphTask("Unset", craft.ID)
	source.Tasks = []Task{dangling, unset}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.WorkAreas, 1)
	assert.Equal(t, PlaceholderWorkAreaName, delta.WorkAreas[0].Name)
	require.Len(t, delta.Tasks, 2)
	require.NotNil(t, delta.Tasks[0].WorkAreaID)
	assert.Equal(t, delta.WorkAreas[0].ID, *delta.Tasks[0].WorkAreaID)
	// An explicitly absent work area stays absent.
	assert.Nil(t, delta.Tasks[1].WorkAreaID)
}

func TestMerge_NoWorkAreaPlaceholderWithoutDanglingReference(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Paint", Color: "#303030"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}
	source.Tasks = []Task{graphTask("No area", craft.ID)}
	source.Milestones = []Milestone{{
		ID:   domain.NewMilestoneID(),
		Name: "Handover",
		Type: domain.MilestoneProject,
		Date: NewDate(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)),
	}}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))
	assert.Empty(t, delta.WorkAreas)
}

// Source has one task whose craft id is absent from the (empty) craft list
// and whose work area is explicitly unset: the merge yields exactly one
// placeholder craft and zero work areas.
func TestMerge_PlaceholderWorkedExample(t *testing.T) {
	source := NewGraph(domain.NewProjectID())
	source.Tasks = []Task{graphTask("Orphan", domain.NewCraftID())}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Crafts, 1)
	assert.Equal(t, PlaceholderCraftName, delta.Crafts[0].Name)
	assert.Empty(t, delta.WorkAreas)
	require.Len(t, delta.Tasks, 1)
	assert.Equal(t, delta.Crafts[0].ID, delta.Tasks[0].CraftID)
}

func TestMerge_MilestoneReferencesResolved(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Roofing", Color: "#404040"}
	area := WorkArea{ID: domain.NewWorkAreaID(), Name: "Roof"}

	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}
	source.WorkAreas = []WorkArea{area}
	source.Milestones = []Milestone{
		{
			ID:         domain.NewMilestoneID(),
			Name:       "Roof closed",
			Type:       domain.MilestoneCraft,
			Date:       NewDate(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)),
			CraftID:    &craft.ID,
			WorkAreaID: &area.ID,
		},
		{
			ID:   domain.NewMilestoneID(),
			Name: "Unreferenced",
			Type: domain.MilestoneProject,
			Date: NewDate(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)),
		},
	}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Milestones, 2)
	require.NotNil(t, delta.Milestones[0].CraftID)
	assert.Equal(t, delta.Crafts[0].ID, *delta.Milestones[0].CraftID)
	require.NotNil(t, delta.Milestones[0].WorkAreaID)
	assert.Equal(t, delta.WorkAreas[0].ID, *delta.Milestones[0].WorkAreaID)
	assert.Nil(t, delta.Milestones[1].CraftID)
	assert.Nil(t, delta.Milestones[1].WorkAreaID)
	assert.NotEqual(t, source.Milestones[0].ID, delta.Milestones[0].ID)
}

func TestMerge_TaskChildrenGetFreshIDs(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Masonry", Color: "#505050"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}

	task := graphTask("Brickwork", craft.ID)
	card := DayCard{
		ID:       domain.NewDayCardID(),
		Date:     NewDate(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)),
		Title:    "North wall",
		Manpower: 3,
		Status:   domain.DayCardDone,
	}
	msg := Message{
		ID:           domain.NewMessageID(),
		Timestamp:    time.Date(2026, 5, 4, 14, 30, 0, 0, time.UTC),
		AuthorUserID: "user-9",
		Content:      "Mortar batch rejected",
	}
	topic := Topic{
		ID:          domain.NewTopicID(),
		Criticality: domain.TopicCritical,
		Description: "Mortar quality",
		Messages:    []Message{msg},
	}
	task.DayCards = []DayCard{card}
	task.Topics = []Topic{topic}
	source.Tasks = []Task{task}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Tasks, 1)
	got := delta.Tasks[0]
	assert.NotEqual(t, task.ID, got.ID)

	require.Len(t, got.DayCards, 1)
	assert.NotEqual(t, card.ID, got.DayCards[0].ID)
	assert.Equal(t, "North wall", got.DayCards[0].Title)
	assert.Equal(t, domain.DayCardDone, got.DayCards[0].Status)

	require.Len(t, got.Topics, 1)
	assert.NotEqual(t, topic.ID, got.Topics[0].ID)
	assert.Equal(t, domain.TopicCritical, got.Topics[0].Criticality)
	require.Len(t, got.Topics[0].Messages, 1)
	assert.NotEqual(t, msg.ID, got.Topics[0].Messages[0].ID)
	assert.Equal(t, "Mortar batch rejected", got.Topics[0].Messages[0].Content)
}

func TestMerge_AssigneeStrippedWhenParticipantNotCarried(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "HVAC", Color: "#606060"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}

	// The assignee references a participant absent from the source graph
	// (e.g., participants were excluded from the export).
	task := graphTask("Ducts", craft.ID)
	orphan := domain.NewParticipantID()
	task.AssigneeID = &orphan
	source.Tasks = []Task{task}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Tasks, 1)
	assert.Nil(t, delta.Tasks[0].AssigneeID)
}

func TestMerge_RelationsRemappedThroughIDTables(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Frame", Color: "#707070"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}

	t1 := graphTask("First", craft.ID)
	t2 := graphTask("Second", craft.ID)
	m1 := Milestone{
		ID:   domain.NewMilestoneID(),
		Name: "Frame done",
		Type: domain.MilestoneProject,
		Date: NewDate(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
	}
	source.Tasks = []Task{t1, t2}
	source.Milestones = []Milestone{m1}
	source.Relations = []Relation{
		{
			Type:   domain.RelationFinishToStart,
			Source: Element{ID: string(t1.ID), Kind: domain.ElementTask},
			Target: Element{ID: string(t2.ID), Kind: domain.ElementTask},
		},
		{
			Type:   domain.RelationPartOf,
			Source: Element{ID: string(t2.ID), Kind: domain.ElementTask},
			Target: Element{ID: string(m1.ID), Kind: domain.ElementMilestone},
		},
	}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))

	require.Len(t, delta.Relations, 2)
	assert.Equal(t, string(delta.Tasks[0].ID), delta.Relations[0].Source.ID)
	assert.Equal(t, string(delta.Tasks[1].ID), delta.Relations[0].Target.ID)
	assert.Equal(t, string(delta.Tasks[1].ID), delta.Relations[1].Source.ID)
	assert.Equal(t, string(delta.Milestones[0].ID), delta.Relations[1].Target.ID)
}

func TestMerge_RelationWithUnmappableEndpointDropped(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Frame", Color: "#707070"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}

	t1 := graphTask("Only", craft.ID)
	source.Tasks = []Task{t1}
	source.Relations = []Relation{{
		Type:   domain.RelationFinishToStart,
		Source: Element{ID: string(t1.ID), Kind: domain.ElementTask},
		Target: Element{ID: string(domain.NewTaskID()), Kind: domain.ElementTask},
	}}

	delta := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))
	assert.Empty(t, delta.Relations)
}

func TestMerge_CopyStrategyMatchesImportEverythingOnEmptyTarget(t *testing.T) {
	craft := Craft{ID: domain.NewCraftID(), Name: "Glazing", Color: "#808080"}
	source := NewGraph(domain.NewProjectID())
	source.Crafts = []Craft{craft}
	source.Tasks = []Task{graphTask("Windows", craft.ID)}

	imported := ImportEverything{}.Merge(source, NewGraph(domain.NewProjectID()))
	copied := Copy{}.Merge(source, NewGraph(domain.NewProjectID()))

	assert.Len(t, copied.Crafts, len(imported.Crafts))
	assert.Len(t, copied.Tasks, len(imported.Tasks))
	assert.Equal(t, "Windows", copied.Tasks[0].Name)
}
