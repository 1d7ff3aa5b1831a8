package service

import (
	"context"
	"testing"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/events"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/snapshot"
	"github.com/avollmer/siteplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCopyParameters(name string) snapshot.CopyParameters {
	return snapshot.CopyParameters{
		ProjectName:      name,
		Disciplines:      true,
		WorkingAreas:     true,
		Milestones:       true,
		Tasks:            true,
		DayCards:         true,
		Topics:           true,
		KeepTaskAssignee: true,
		KeepTaskStatus:   true,
	}
}

func TestCopy_InvalidParametersFailBeforeAnyWork(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCopyService(testutil.NewTestUoW(database))

	// Source doesn't even exist; validation must trip first.
	_, err := svc.Copy(context.Background(), domain.NewProjectID(),
		snapshot.CopyParameters{ProjectName: "", Tasks: true})
	assert.ErrorIs(t, err, snapshot.ErrInvalidParameters)

	projects, listErr := repository.NewStores(database).Projects.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, projects)
}

func TestCopy_FullCopyCreatesIndependentProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := seedSourceProject(t, database)
	svc := NewCopyService(testutil.NewTestUoW(database))
	ctx := context.Background()

	res, err := svc.Copy(ctx, s.project.ID, fullCopyParameters("Harbor Terminal II"))
	require.NoError(t, err)
	require.NotEqual(t, s.project.ID, res.ProjectID)

	copied, err := s.stores.Projects.GetByID(ctx, res.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Terminal II", copied.Title)
	assert.Equal(t, s.project.Client, copied.Client)
	assert.Equal(t, s.project.Category, copied.Category)

	assert.Equal(t, 1, res.Result.Participants, "only the active participant is carried")
	assert.Equal(t, 2, res.Result.Crafts)
	assert.Equal(t, 2, res.Result.WorkAreas)
	assert.Equal(t, 1, res.Result.Milestones)
	assert.Equal(t, 2, res.Result.Tasks)
	assert.Equal(t, 1, res.Result.DayCards)
	assert.Equal(t, 1, res.Result.Topics)
	assert.Equal(t, 1, res.Result.Messages)
	assert.Equal(t, 2, res.Result.Relations)

	// Every identifier is fresh: the copied tasks are new rows.
	tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.NotEqual(t, s.firstTask.ID, task.ID)
		assert.NotEqual(t, s.secondTask.ID, task.ID)
	}

	// The source is untouched.
	sourceTasks, err := s.stores.Tasks.ListByProject(ctx, s.project.ID)
	require.NoError(t, err)
	assert.Len(t, sourceTasks, 2)
}

func TestCopy_KeepTaskStatusPreservesStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := seedSourceProject(t, database)
	svc := NewCopyService(testutil.NewTestUoW(database))
	ctx := context.Background()

	res, err := svc.Copy(ctx, s.project.ID, fullCopyParameters("With status"))
	require.NoError(t, err)

	tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	statuses := map[domain.TaskStatus]bool{}
	for _, task := range tasks {
		statuses[task.Status] = true
	}
	assert.True(t, statuses[domain.TaskStarted])
	assert.True(t, statuses[domain.TaskOpen])
}

func TestCopy_WithoutStatusAllTasksDraft(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := seedSourceProject(t, database)
	svc := NewCopyService(testutil.NewTestUoW(database))
	ctx := context.Background()

	params := fullCopyParameters("Drafts")
	params.KeepTaskStatus = false
	res, err := svc.Copy(ctx, s.project.ID, params)
	require.NoError(t, err)

	tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.Equal(t, domain.TaskDraft, task.Status)
	}
}

func TestCopy_AssigneePolicy(t *testing.T) {
	t.Run("kept for active assignee", func(t *testing.T) {
		database := testutil.NewTestDB(t)
		s := seedSourceProject(t, database)
		svc := NewCopyService(testutil.NewTestUoW(database))
		ctx := context.Background()

		res, err := svc.Copy(ctx, s.project.ID, fullCopyParameters("Keep"))
		require.NoError(t, err)

		tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
		require.NoError(t, err)
		var kept int
		for _, task := range tasks {
			if task.AssigneeID != nil {
				kept++
				assert.NotEqual(t, s.active.ID, *task.AssigneeID, "assignee id is remapped")
			}
		}
		assert.Equal(t, 1, kept)
	})

	t.Run("stripped when flag off", func(t *testing.T) {
		database := testutil.NewTestDB(t)
		s := seedSourceProject(t, database)
		svc := NewCopyService(testutil.NewTestUoW(database))
		ctx := context.Background()

		params := fullCopyParameters("Strip")
		params.KeepTaskAssignee = false
		params.KeepTaskStatus = false
		res, err := svc.Copy(ctx, s.project.ID, params)
		require.NoError(t, err)

		tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
		require.NoError(t, err)
		for _, task := range tasks {
			assert.Nil(t, task.AssigneeID)
		}
	})

	t.Run("stripped for inactive assignee regardless of flag", func(t *testing.T) {
		database := testutil.NewTestDB(t)
		s := seedSourceProject(t, database)
		ctx := context.Background()

		// Reassign the first task to the inactive participant.
		inactiveTask := testutil.NewTestTask(s.project.ID, "Inactive owner", s.crafts[0].ID,
			testutil.WithAssignee(s.inactive.ID))
		require.NoError(t, s.stores.Tasks.Create(ctx, inactiveTask))

		svc := NewCopyService(testutil.NewTestUoW(database))
		res, err := svc.Copy(ctx, s.project.ID, fullCopyParameters("Inactive"))
		require.NoError(t, err)

		tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		for _, task := range tasks {
			if task.Name == "Inactive owner" {
				assert.Nil(t, task.AssigneeID)
			}
		}
	})
}

func TestCopy_DisciplinesExcludedYieldsPlaceholderCraft(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := seedSourceProject(t, database)
	svc := NewCopyService(testutil.NewTestUoW(database))
	ctx := context.Background()

	params := snapshot.CopyParameters{ProjectName: "No disciplines", Tasks: true}
	res, err := svc.Copy(ctx, s.project.ID, params)
	require.NoError(t, err)

	crafts, err := s.stores.Crafts.ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	require.Len(t, crafts, 1)
	assert.Equal(t, snapshot.PlaceholderCraftName, crafts[0].Name)
	assert.Equal(t, snapshot.PlaceholderCraftColor, crafts[0].Color)

	// Both copied tasks share the single placeholder.
	tasks, err := s.stores.Tasks.ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, crafts[0].ID, task.CraftID)
	}
}

func TestCopy_EventSequence(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := seedSourceProject(t, database)
	svc := NewCopyService(testutil.NewTestUoW(database))
	ctx := context.Background()

	res, err := svc.Copy(ctx, s.project.ID, fullCopyParameters("Evented"))
	require.NoError(t, err)

	log, err := events.NewWriter(database).ListByProject(ctx, res.ProjectID)
	require.NoError(t, err)
	require.NotEmpty(t, log)

	assert.Equal(t, events.TypeCopyStarted, log[0].Type)
	assert.Equal(t, string(s.project.ID), log[0].ResourceID)
	assert.Equal(t, events.TypeCopyFinished, log[len(log)-1].Type)

	var created int
	for _, e := range log[1 : len(log)-1] {
		assert.Contains(t, e.Type, ".created")
		created++
	}
	assert.Greater(t, created, 5)
}

func TestCopy_UnknownSourceFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCopyService(testutil.NewTestUoW(database))

	_, err := svc.Copy(context.Background(), domain.NewProjectID(), fullCopyParameters("Ghost"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	projects, listErr := repository.NewStores(database).Projects.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, projects)
}
