package domain

import "time"

type Task struct {
	ID          TaskID
	ProjectID   ProjectID
	Name        string
	Description string
	Location    string
	CraftID     CraftID
	AssigneeID  *ParticipantID
	WorkAreaID  *WorkAreaID
	Status      TaskStatus

	// Schedule. Both are set or both are nil; a task without a schedule
	// cannot take part in FINISH_TO_START criticality.
	Start *time.Time
	End   *time.Time
}

// HasSchedule reports whether the task carries resolvable schedule dates.
func (t *Task) HasSchedule() bool {
	return t.Start != nil && t.End != nil
}

type DayCard struct {
	ID       DayCardID
	TaskID   TaskID
	Date     time.Time
	Title    string
	Manpower float64
	Notes    string
	Status   DayCardStatus
	Reason   string
}
