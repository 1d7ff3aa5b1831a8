package domain

// Participant is a company/user membership in one project. Status is the
// variant tag: an ACTIVE participant always carries a user, a company and a
// role; invited or inactive participants may lack any of them.
type Participant struct {
	ID        ParticipantID
	ProjectID ProjectID
	Status    ParticipantStatus
	UserID    *UserID
	CompanyID *CompanyID
	Role      *ParticipantRole
}

// IsActive reports whether this participant takes part in merges. Only
// active participants are ever carried into another project.
func (p *Participant) IsActive() bool {
	return p.Status == ParticipantActive
}
