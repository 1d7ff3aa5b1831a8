// Package snapshot defines the neutral, identifier-addressed representation
// of a project graph: the wire contract shared by the export, import and copy
// paths, the settings/parameters objects, and the pure merge strategies that
// compute identity-remapped deltas between two graphs.
package snapshot

import (
	"time"

	"github.com/avollmer/siteplan/internal/domain"
)

// ProjectGraph is the root of an exported project tree. It is constructed
// fresh on every export and never mutated afterwards; the importer consumes
// it once. Collections are always present (empty, never nil) so the encoded
// form keeps the full schema shape regardless of export settings.
type ProjectGraph struct {
	ID            domain.ProjectID        `json:"id" yaml:"id"`
	Title         string                  `json:"title" yaml:"title"`
	Client        string                  `json:"client,omitempty" yaml:"client,omitempty"`
	Description   string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Start         Date                    `json:"start" yaml:"start"`
	End           Date                    `json:"end" yaml:"end"`
	ProjectNumber string                  `json:"projectNumber,omitempty" yaml:"projectNumber,omitempty"`
	Category      domain.ProjectCategory  `json:"category,omitempty" yaml:"category,omitempty"`
	Address       Address                 `json:"address" yaml:"address"`
	Participants  []Participant           `json:"participants" yaml:"participants"`
	Crafts        []Craft                 `json:"crafts" yaml:"crafts"`
	WorkAreas     []WorkArea              `json:"workAreas" yaml:"workAreas"`
	Milestones    []Milestone             `json:"milestones" yaml:"milestones"`
	Tasks         []Task                  `json:"tasks" yaml:"tasks"`
	Relations     []Relation              `json:"relations" yaml:"relations"`
}

type Address struct {
	Street      string `json:"street,omitempty" yaml:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty" yaml:"houseNumber,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	ZipCode     string `json:"zipCode,omitempty" yaml:"zipCode,omitempty"`
}

// Participant carries the tagged union of active versus other (invited or
// inactive) participants. Status is the tag; an active participant always has
// a user, company and role. Only active participants take part in merges.
type Participant struct {
	ID        domain.ParticipantID     `json:"id" yaml:"id"`
	Status    domain.ParticipantStatus `json:"status" yaml:"status"`
	UserID    *domain.UserID           `json:"userId,omitempty" yaml:"userId,omitempty"`
	CompanyID *domain.CompanyID        `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	Role      *domain.ParticipantRole  `json:"role,omitempty" yaml:"role,omitempty"`
}

func (p *Participant) IsActive() bool {
	return p.Status == domain.ParticipantActive
}

type Craft struct {
	ID    domain.CraftID `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Color string         `json:"color" yaml:"color"`
}

// WorkArea list order is semantically significant: it mirrors the project's
// persisted ordered list, not alphabetical or insertion order.
type WorkArea struct {
	ID   domain.WorkAreaID `json:"id" yaml:"id"`
	Name string            `json:"name" yaml:"name"`
}

type Milestone struct {
	ID          domain.MilestoneID   `json:"id" yaml:"id"`
	Name        string               `json:"name" yaml:"name"`
	Type        domain.MilestoneType `json:"type" yaml:"type"`
	Date        Date                 `json:"date" yaml:"date"`
	Header      bool                 `json:"header" yaml:"header"`
	CraftID     *domain.CraftID      `json:"craftId,omitempty" yaml:"craftId,omitempty"`
	WorkAreaID  *domain.WorkAreaID   `json:"workAreaId,omitempty" yaml:"workAreaId,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
}

type Task struct {
	ID          domain.TaskID         `json:"id" yaml:"id"`
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string                `json:"location,omitempty" yaml:"location,omitempty"`
	CraftID     domain.CraftID        `json:"craftId" yaml:"craftId"`
	AssigneeID  *domain.ParticipantID `json:"assigneeId,omitempty" yaml:"assigneeId,omitempty"`
	WorkAreaID  *domain.WorkAreaID    `json:"workAreaId,omitempty" yaml:"workAreaId,omitempty"`
	Status      domain.TaskStatus     `json:"status" yaml:"status"`
	Start       *Date                 `json:"start,omitempty" yaml:"start,omitempty"`
	End         *Date                 `json:"end,omitempty" yaml:"end,omitempty"`
	DayCards    []DayCard             `json:"dayCards" yaml:"dayCards"`
	Topics      []Topic               `json:"topics" yaml:"topics"`
}

// HasSchedule reports whether both schedule dates are set. Criticality of a
// FINISH_TO_START relation is only computable across scheduled endpoints.
func (t *Task) HasSchedule() bool {
	return t.Start != nil && t.End != nil
}

type DayCard struct {
	ID       domain.DayCardID     `json:"id" yaml:"id"`
	Date     Date                 `json:"date" yaml:"date"`
	Title    string               `json:"title" yaml:"title"`
	Manpower float64              `json:"manpower" yaml:"manpower"`
	Notes    string               `json:"notes,omitempty" yaml:"notes,omitempty"`
	Status   domain.DayCardStatus `json:"status" yaml:"status"`
	Reason   string               `json:"reason,omitempty" yaml:"reason,omitempty"`
}

type Topic struct {
	ID          domain.TopicID          `json:"id" yaml:"id"`
	Criticality domain.TopicCriticality `json:"criticality" yaml:"criticality"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Messages    []Message               `json:"messages" yaml:"messages"`
}

type Message struct {
	ID           domain.MessageID `json:"id" yaml:"id"`
	Timestamp    time.Time        `json:"timestamp" yaml:"timestamp"`
	AuthorUserID domain.UserID    `json:"authorUserId" yaml:"authorUserId"`
	Content      string           `json:"content" yaml:"content"`
}

type Element struct {
	ID   string                     `json:"id" yaml:"id"`
	Kind domain.RelationElementKind `json:"kind" yaml:"kind"`
}

type Relation struct {
	Type        domain.RelationType `json:"type" yaml:"type"`
	Source      Element             `json:"source" yaml:"source"`
	Target      Element             `json:"target" yaml:"target"`
	Criticality *bool               `json:"criticality,omitempty" yaml:"criticality,omitempty"`
}

// NewGraph returns a graph with all collections initialized empty.
func NewGraph(id domain.ProjectID) *ProjectGraph {
	return &ProjectGraph{
		ID:           id,
		Participants: []Participant{},
		Crafts:       []Craft{},
		WorkAreas:    []WorkArea{},
		Milestones:   []Milestone{},
		Tasks:        []Task{},
		Relations:    []Relation{},
	}
}
