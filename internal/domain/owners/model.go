package owners

import "time"

// Role distingue doctores de dueños de mascota.
// @Enum doctor, pet_owner
type Role string

const (
	RoleDoctor   Role = "doctor"
	RolePetOwner Role = "pet_owner"
)

// Owner representa al responsable de una o más mascotas.
// En el lookup por RFID es solo un join de lectura.
type Owner struct {
	ID string

	Name    string
	Email   string
	Address string
	Contact string
	Role    Role

	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
