package domain

import "github.com/google/uuid"

// Typed identifiers for every entity in the project graph. They are plain
// UUID strings underneath; the distinct types keep the id-remapping code in
// the merge path from mixing up entity kinds.
type (
	ProjectID     string
	ParticipantID string
	UserID        string
	CompanyID     string
	CraftID       string
	WorkAreaID    string
	MilestoneID   string
	TaskID        string
	DayCardID     string
	TopicID       string
	MessageID     string
)

func NewProjectID() ProjectID         { return ProjectID(uuid.NewString()) }
func NewParticipantID() ParticipantID { return ParticipantID(uuid.NewString()) }
func NewCraftID() CraftID             { return CraftID(uuid.NewString()) }
func NewWorkAreaID() WorkAreaID       { return WorkAreaID(uuid.NewString()) }
func NewMilestoneID() MilestoneID     { return MilestoneID(uuid.NewString()) }
func NewTaskID() TaskID               { return TaskID(uuid.NewString()) }
func NewDayCardID() DayCardID         { return DayCardID(uuid.NewString()) }
func NewTopicID() TopicID             { return TopicID(uuid.NewString()) }
func NewMessageID() MessageID         { return MessageID(uuid.NewString()) }
