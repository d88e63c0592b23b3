package pets

import "time"

// PetType define las especies soportadas.
// @Enum dog, cat
type PetType string

const (
	PetTypeDog PetType = "dog"
	PetTypeCat PetType = "cat"
)

// Status define el estado del registro de la mascota.
// Evoluciona aparte del estado de vacunación.
// @Enum active, inactive
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Vaccination es una entrada (fecha, tipo) de la historia de vacunación.
type Vaccination struct {
	Date            time.Time `json:"date"`
	VaccinationType string    `json:"vaccinationType"`
}

// Pet es el registro de una mascota. RFIDNumber es único e inmutable
// una vez asignado; contact/address son copias desnormalizadas del
// dueño, guardadas en el propio registro.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	PetType PetType
	Breed1  string
	Breed2  string
	Status  Status

	DOB        time.Time
	RFIDNumber string

	Contact string
	Address string
	Email   string

	// Orden de inserción; puede estar vacía.
	VaccinationHistory []Vaccination

	CreatedAt time.Time
	UpdatedAt time.Time
}
