package domain

type ProjectCategory string

const (
	CategoryNewBuilding ProjectCategory = "NB"
	CategoryOldBuilding ProjectCategory = "OB"
	CategoryRefurbished ProjectCategory = "RB"
)

type ParticipantRole string

const (
	RoleCSM ParticipantRole = "CSM"
	RoleCR  ParticipantRole = "CR"
	RoleFM  ParticipantRole = "FM"
)

type ParticipantStatus string

const (
	ParticipantActive   ParticipantStatus = "ACTIVE"
	ParticipantInvited  ParticipantStatus = "INVITED"
	ParticipantInactive ParticipantStatus = "INACTIVE"
)

type TaskStatus string

const (
	TaskDraft    TaskStatus = "DRAFT"
	TaskOpen     TaskStatus = "OPEN"
	TaskStarted  TaskStatus = "STARTED"
	TaskClosed   TaskStatus = "CLOSED"
	TaskAccepted TaskStatus = "ACCEPTED"
)

type DayCardStatus string

const (
	DayCardOpen     DayCardStatus = "OPEN"
	DayCardDone     DayCardStatus = "DONE"
	DayCardApproved DayCardStatus = "APPROVED"
	DayCardNotDone  DayCardStatus = "NOTDONE"
)

type MilestoneType string

const (
	MilestoneProject  MilestoneType = "PROJECT"
	MilestoneInvestor MilestoneType = "INVESTOR"
	MilestoneCraft    MilestoneType = "CRAFT"
)

type TopicCriticality string

const (
	TopicCritical   TopicCriticality = "CRITICAL"
	TopicUncritical TopicCriticality = "UNCRITICAL"
)

type RelationType string

const (
	RelationFinishToStart RelationType = "FINISH_TO_START"
	RelationPartOf        RelationType = "PART_OF"
)

type RelationElementKind string

const (
	ElementTask      RelationElementKind = "TASK"
	ElementMilestone RelationElementKind = "MILESTONE"
)
