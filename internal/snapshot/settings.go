package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameters marks a malformed CopyParameters combination. It is
// always raised before any store access.
var ErrInvalidParameters = errors.New("invalid copy parameters")

// ExportSettings selects which sub-collections an export includes. A disabled
// option yields an empty collection, never a nil one, so the result always
// carries the full schema shape.
type ExportSettings struct {
	Participants bool
	Crafts       bool
	WorkAreas    bool
	Milestones   bool
	Tasks        bool
	TaskStatus   bool
	DayCards     bool
	Topics       bool
	Relations    bool
}

// ExportEverything enables every collection.
func ExportEverything() ExportSettings {
	return ExportSettings{
		Participants: true,
		Crafts:       true,
		WorkAreas:    true,
		Milestones:   true,
		Tasks:        true,
		TaskStatus:   true,
		DayCards:     true,
		Topics:       true,
		Relations:    true,
	}
}

// CopyParameters configures one "copy project" operation. Cross-field
// invariants are enforced eagerly via Validate before any work begins.
type CopyParameters struct {
	ProjectName      string
	Disciplines      bool // crafts
	WorkingAreas     bool
	Milestones       bool
	Tasks            bool
	DayCards         bool
	Topics           bool
	KeepTaskAssignee bool
	KeepTaskStatus   bool
}

// Validate checks the cross-field invariants. Day cards, topics and assignee
// retention only make sense when tasks are copied; task status retention
// implies assignee retention.
func (p CopyParameters) Validate() error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return fmt.Errorf("%w: project name must not be blank", ErrInvalidParameters)
	}
	if p.DayCards && !p.Tasks {
		return fmt.Errorf("%w: day cards require tasks", ErrInvalidParameters)
	}
	if p.Topics && !p.Tasks {
		return fmt.Errorf("%w: topics require tasks", ErrInvalidParameters)
	}
	if p.KeepTaskAssignee && !p.Tasks {
		return fmt.Errorf("%w: keeping task assignees requires tasks", ErrInvalidParameters)
	}
	if p.KeepTaskStatus && !p.KeepTaskAssignee {
		return fmt.Errorf("%w: keeping task status requires keeping task assignees", ErrInvalidParameters)
	}
	return nil
}

// ExportSettings derives the exporter configuration. Participants are needed
// exactly when assignees are kept; relations whenever tasks or milestones are
// copied.
func (p CopyParameters) ExportSettings() ExportSettings {
	return ExportSettings{
		Participants: p.KeepTaskAssignee,
		Crafts:       p.Disciplines,
		WorkAreas:    p.WorkingAreas,
		Milestones:   p.Milestones,
		Tasks:        p.Tasks,
		TaskStatus:   p.KeepTaskStatus,
		DayCards:     p.DayCards,
		Topics:       p.Topics,
		Relations:    p.Tasks || p.Milestones,
	}
}
