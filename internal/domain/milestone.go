package domain

import "time"

type Milestone struct {
	ID          MilestoneID
	ProjectID   ProjectID
	Name        string
	Type        MilestoneType
	Date        time.Time
	Header      bool
	CraftID     *CraftID
	WorkAreaID  *WorkAreaID
	Description string
	Position    int
}
