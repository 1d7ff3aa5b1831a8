package domain

import "time"

// Address is the postal address of a construction project.
type Address struct {
	Street      string
	HouseNumber string
	City        string
	ZipCode     string
}

type Project struct {
	ID            ProjectID
	Title         string
	Client        string
	Description   string
	Start         time.Time
	End           time.Time
	ProjectNumber string
	Category      ProjectCategory
	Address       Address
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
