package domain

// RelationElement addresses one endpoint of a relation. The id is kept
// untyped because an endpoint may be a task or a milestone; Kind says which.
type RelationElement struct {
	ID   string
	Kind RelationElementKind
}

func TaskElement(id TaskID) RelationElement {
	return RelationElement{ID: string(id), Kind: ElementTask}
}

func MilestoneElement(id MilestoneID) RelationElement {
	return RelationElement{ID: string(id), Kind: ElementMilestone}
}

// Relation links two schedulable elements within one project.
// FINISH_TO_START expresses a scheduling dependency; PART_OF nests a task
// under a milestone. Critical is nil until criticality has been computed.
type Relation struct {
	ProjectID ProjectID
	Type      RelationType
	Source    RelationElement
	Target    RelationElement
	Critical  *bool
}

// SameEndpoints reports whether both endpoints address the same element.
func (r *Relation) SameEndpoints() bool {
	return r.Source == r.Target
}
