package visits

import "time"

// Visit registra una consulta de una mascota en la clínica.
type Visit struct {
	ID      string
	PetID   string
	OwnerID string

	Date    time.Time
	Comment string

	CreatedAt time.Time
	UpdatedAt time.Time
}
