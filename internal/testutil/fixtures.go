package testutil

import (
	"time"

	"github.com/avollmer/siteplan/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithCategory(c domain.ProjectCategory) ProjectOption {
	return func(p *domain.Project) {
		p.Category = c
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.Start = start
		p.End = end
	}
}

func WithAddress(a domain.Address) ProjectOption {
	return func(p *domain.Project) {
		p.Address = a
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:            domain.NewProjectID(),
		Title:         title,
		Client:        "Test Client",
		ProjectNumber: "P-001",
		Category:      domain.CategoryNewBuilding,
		Start:         now.AddDate(0, -1, 0).Truncate(24 * time.Hour),
		End:           now.AddDate(0, 6, 0).Truncate(24 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Participant options
type ParticipantOption func(*domain.Participant)

func WithParticipantStatus(s domain.ParticipantStatus) ParticipantOption {
	return func(p *domain.Participant) {
		p.Status = s
	}
}

func WithUserID(id domain.UserID) ParticipantOption {
	return func(p *domain.Participant) {
		p.UserID = &id
	}
}

func WithCompanyID(id domain.CompanyID) ParticipantOption {
	return func(p *domain.Participant) {
		p.CompanyID = &id
	}
}

func WithRole(r domain.ParticipantRole) ParticipantOption {
	return func(p *domain.Participant) {
		p.Role = &r
	}
}

// NewTestParticipant builds an active participant with a user, company and
// role. Options can downgrade it to an invited or inactive one.
func NewTestParticipant(projectID domain.ProjectID, opts ...ParticipantOption) *domain.Participant {
	user := domain.UserID(string(domain.NewProjectID()))
	company := domain.CompanyID(string(domain.NewProjectID()))
	role := domain.RoleFM
	p := &domain.Participant{
		ID:        domain.NewParticipantID(),
		ProjectID: projectID,
		Status:    domain.ParticipantActive,
		UserID:    &user,
		CompanyID: &company,
		Role:      &role,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestCraft(projectID domain.ProjectID, name string, position int) *domain.Craft {
	return &domain.Craft{
		ID:        domain.NewCraftID(),
		ProjectID: projectID,
		Name:      name,
		Color:     "#336699",
		Position:  position,
	}
}

func NewTestWorkArea(projectID domain.ProjectID, name string, position int) *domain.WorkArea {
	return &domain.WorkArea{
		ID:        domain.NewWorkAreaID(),
		ProjectID: projectID,
		Name:      name,
		Position:  position,
	}
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithMilestoneCraft(id domain.CraftID) MilestoneOption {
	return func(m *domain.Milestone) {
		m.CraftID = &id
		m.Type = domain.MilestoneCraft
	}
}

func WithMilestoneWorkArea(id domain.WorkAreaID) MilestoneOption {
	return func(m *domain.Milestone) {
		m.WorkAreaID = &id
	}
}

func WithMilestoneType(t domain.MilestoneType) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Type = t
	}
}

func NewTestMilestone(projectID domain.ProjectID, name string, date time.Time, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ID:        domain.NewMilestoneID(),
		ProjectID: projectID,
		Name:      name,
		Type:      domain.MilestoneProject,
		Date:      date,
		Header:    false,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithAssignee(id domain.ParticipantID) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &id
	}
}

func WithTaskWorkArea(id domain.WorkAreaID) TaskOption {
	return func(t *domain.Task) {
		t.WorkAreaID = &id
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithSchedule(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Start = &start
		t.End = &end
	}
}

func NewTestTask(projectID domain.ProjectID, name string, craftID domain.CraftID, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        domain.NewTaskID(),
		ProjectID: projectID,
		Name:      name,
		CraftID:   craftID,
		Status:    domain.TaskDraft,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestDayCard(taskID domain.TaskID, date time.Time, title string) *domain.DayCard {
	return &domain.DayCard{
		ID:       domain.NewDayCardID(),
		TaskID:   taskID,
		Date:     date,
		Title:    title,
		Manpower: 2.5,
		Status:   domain.DayCardOpen,
	}
}

func NewTestTopic(taskID domain.TaskID, description string) *domain.Topic {
	return &domain.Topic{
		ID:          domain.NewTopicID(),
		TaskID:      taskID,
		Criticality: domain.TopicUncritical,
		Description: description,
	}
}

func NewTestMessage(topicID domain.TopicID, author domain.UserID, content string) *domain.Message {
	return &domain.Message{
		ID:           domain.NewMessageID(),
		TopicID:      topicID,
		Timestamp:    time.Now().UTC().Truncate(time.Second),
		AuthorUserID: author,
		Content:      content,
	}
}

func NewTestRelation(projectID domain.ProjectID, typ domain.RelationType, source, target domain.RelationElement) *domain.Relation {
	return &domain.Relation{
		ProjectID: projectID,
		Type:      typ,
		Source:    source,
		Target:    target,
	}
}
