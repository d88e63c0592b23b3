package personnel

import "time"

// DefaultRole es el rol con el que se crean las cuentas de personal.
const DefaultRole = "personnel"

// Personnel es una cuenta de staff autorizada a escanear RFID.
// Distinta de Owner: el personal no posee mascotas, las consulta.
type Personnel struct {
	ID string

	Name          string
	Email         string
	ContactNumber string
	Role          string

	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
