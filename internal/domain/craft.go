package domain

// Craft is a project-scoped discipline (trade). Position is the explicit
// place in the project's ordered craft list.
type Craft struct {
	ID        CraftID
	ProjectID ProjectID
	Name      string
	Color     string
	Position  int
}

// WorkArea is a physical working area of the construction site. The order of
// work areas is user-maintained, not alphabetical.
type WorkArea struct {
	ID        WorkAreaID
	ProjectID ProjectID
	Name      string
	Position  int
}
