package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// seeded holds the entities written by seedSourceProject, for assertions.
type seeded struct {
	stores      *repository.Stores
	project     *domain.Project
	active      *domain.Participant
	inactive    *domain.Participant
	crafts      []*domain.Craft
	workAreas   []*domain.WorkArea
	milestone   *domain.Milestone
	firstTask   *domain.Task
	secondTask  *domain.Task
	topic       *domain.Topic
}

// seedSourceProject writes a small but fully-connected project: two crafts in
// reversed insertion order, two work areas, one milestone, two scheduled
// tasks (one with a day card, topic and message), a FINISH_TO_START and a
// PART_OF relation.
func seedSourceProject(t *testing.T, database *sql.DB) *seeded {
	t.Helper()
	ctx := context.Background()
	stores := repository.NewStores(database)

	proj := testutil.NewTestProject("Harbor Terminal")
	require.NoError(t, stores.Projects.Create(ctx, proj))

	active := testutil.NewTestParticipant(proj.ID)
	inactive := testutil.NewTestParticipant(proj.ID,
		testutil.WithParticipantStatus(domain.ParticipantInactive))
	require.NoError(t, stores.Participants.Create(ctx, active))
	require.NoError(t, stores.Participants.Create(ctx, inactive))

	// Insert in reverse position order on purpose.
	second := testutil.NewTestCraft(proj.ID, "Steel", 1)
	first := testutil.NewTestCraft(proj.ID, "Concrete", 0)
	require.NoError(t, stores.Crafts.Create(ctx, second))
	require.NoError(t, stores.Crafts.Create(ctx, first))

	areaB := testutil.NewTestWorkArea(proj.ID, "Quay", 1)
	areaA := testutil.NewTestWorkArea(proj.ID, "Pier", 0)
	require.NoError(t, stores.WorkAreas.Create(ctx, areaB))
	require.NoError(t, stores.WorkAreas.Create(ctx, areaA))

	milestone := testutil.NewTestMilestone(proj.ID, "Foundation complete",
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, stores.Milestones.Create(ctx, milestone))

	t1 := testutil.NewTestTask(proj.ID, "Drive piles", first.ID,
		testutil.WithSchedule(
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		testutil.WithAssignee(active.ID),
		testutil.WithTaskStatus(domain.TaskStarted),
		testutil.WithTaskWorkArea(areaA.ID))
	t2 := testutil.NewTestTask(proj.ID, "Cap beams", second.ID,
		testutil.WithSchedule(
			time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithTaskStatus(domain.TaskOpen))
	require.NoError(t, stores.Tasks.Create(ctx, t1))
	require.NoError(t, stores.Tasks.Create(ctx, t2))

	card := testutil.NewTestDayCard(t1.ID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "Pile row A")
	require.NoError(t, stores.DayCards.Create(ctx, card))

	topic := testutil.NewTestTopic(t1.ID, "Soil deviation")
	require.NoError(t, stores.Topics.Create(ctx, topic))
	msg := testutil.NewTestMessage(topic.ID, *active.UserID, "Geologist on site Monday")
	require.NoError(t, stores.Messages.Create(ctx, msg))

	f2s := testutil.NewTestRelation(proj.ID, domain.RelationFinishToStart,
		domain.TaskElement(t1.ID), domain.TaskElement(t2.ID))
	partOf := testutil.NewTestRelation(proj.ID, domain.RelationPartOf,
		domain.TaskElement(t1.ID), domain.MilestoneElement(milestone.ID))
	require.NoError(t, stores.Relations.Create(ctx, f2s))
	require.NoError(t, stores.Relations.Create(ctx, partOf))

	return &seeded{
		stores:     stores,
		project:    proj,
		active:     active,
		inactive:   inactive,
		crafts:     []*domain.Craft{first, second},
		workAreas:  []*domain.WorkArea{areaA, areaB},
		milestone:  milestone,
		firstTask:  t1,
		secondTask: t2,
		topic:      topic,
	}
}
