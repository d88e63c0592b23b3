package pets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pet-registry/internal/domain/owners"
)

// lookupTimeout acota la única ida al store del lookup.
// Un timeout se mapea a ErrUnavailable, nunca a datos parciales.
const lookupTimeout = 3 * time.Second

// RFIDLookup es el resultado del join mascota+dueño, con la historia
// de vacunación cruda (sin ordenar).
type RFIDLookup struct {
	Pet   Pet
	Owner owners.Owner
}

// LookupByRFID resuelve un código RFID a su mascota y dueño.
// - Formato inválido => ErrInvalidRFID, sin consultar el store.
// - Sin mascota => ErrNotFound.
// - Mascota sin dueño resoluble => ErrOwnerMissing.
// - Falla o timeout del store => ErrUnavailable (envuelto).
// Solo lectura; el flujo no reintenta.
func (s *Service) LookupByRFID(ctx context.Context, code string) (RFIDLookup, error) {
	if !ValidRFID(code) {
		return RFIDLookup{}, ErrInvalidRFID
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	p, o, err := s.repo.GetByRFID(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrOwnerMissing):
			return RFIDLookup{}, err
		default:
			return RFIDLookup{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return RFIDLookup{Pet: p, Owner: o}, nil
}

// VaccinationEntry es la forma externa de una entrada de vacunación.
type VaccinationEntry struct {
	Date            string `json:"date"` // ISO-8601
	VaccinationType string `json:"vaccinationType"`
}

// LookupResponse es el payload desnormalizado del lookup por RFID.
type LookupResponse struct {
	RFID               string             `json:"rfid"`
	OwnerName          string             `json:"ownerName"`
	Contact            string             `json:"contact"`
	Address            string             `json:"address"`
	VaccinationHistory []VaccinationEntry `json:"vaccinationHistory"`
	PetName            string             `json:"petName"`
	PetType            string             `json:"petType"`
	Breed1             string             `json:"breed1"`
	Breed2             string             `json:"breed2"`
	PersonnelName      string             `json:"personnelName"`
}

// ComposeLookup arma el payload externo. Función pura, sin I/O:
// - historia ordenada por fecha descendente, orden estable entre
//   entradas con la misma fecha,
// - historia vacía => [] explícito, nunca null,
// - personnelName viene de las claims; acá no se inventan defaults.
func ComposeLookup(l RFIDLookup, personnelName string) LookupResponse {
	history := make([]VaccinationEntry, 0, len(l.Pet.VaccinationHistory))

	sorted := make([]Vaccination, len(l.Pet.VaccinationHistory))
	copy(sorted, l.Pet.VaccinationHistory)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for _, v := range sorted {
		history = append(history, VaccinationEntry{
			Date:            v.Date.UTC().Format(time.RFC3339),
			VaccinationType: v.VaccinationType,
		})
	}

	return LookupResponse{
		RFID:               l.Pet.RFIDNumber,
		OwnerName:          l.Owner.Name,
		Contact:            l.Pet.Contact,
		Address:            l.Pet.Address,
		VaccinationHistory: history,
		PetName:            l.Pet.Name,
		PetType:            string(l.Pet.PetType),
		Breed1:             l.Pet.Breed1,
		Breed2:             l.Pet.Breed2,
		PersonnelName:      personnelName,
	}
}
