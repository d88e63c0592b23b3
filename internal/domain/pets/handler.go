package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		// Lookup por RFID: el único flujo que combina mascota, dueño,
		// historia de vacunación y atribución del personal.
		pr.Get("/rfid/{rfidCode}", lookupByRFIDHandler(svc, log))

		pr.Get("/owner/{ownerID}", listPetsByOwnerHandler(svc))
		pr.Put("/details/{petID}", updatePetDetailsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Post("/{petID}/vaccinations", addVaccinationHandler(svc))
	})
}

type createPetRequest struct {
	OwnerID    string `json:"ownerId"`
	Name       string `json:"name"`
	PetType    string `json:"petType"`
	Breed1     string `json:"breed1"`
	Breed2     string `json:"breed2"`
	DOB        string `json:"dob"` // YYYY-MM-DD
	RFIDNumber string `json:"rfidNumber"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	Email      string `json:"email"`
}

type updatePetRequest struct {
	// Punteros para PATCH-sobre-PUT: nil = no tocar.
	Name    *string `json:"name"`
	PetType *string `json:"petType"`
	Breed1  *string `json:"breed1"`
	Breed2  *string `json:"breed2"`
	Status  *string `json:"status"`
	DOB     *string `json:"dob"` // YYYY-MM-DD
}

type updatePetDetailsRequest struct {
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

type addVaccinationRequest struct {
	Date            string `json:"date"` // YYYY-MM-DD o RFC3339
	VaccinationType string `json:"vaccinationType"`
}

type petResponse struct {
	ID                 string        `json:"id"`
	OwnerID            string        `json:"ownerId"`
	Name               string        `json:"name"`
	PetType            string        `json:"petType"`
	Breed1             string        `json:"breed1"`
	Breed2             string        `json:"breed2"`
	Status             string        `json:"status"`
	DOB                time.Time     `json:"dob"`
	RFIDNumber         string        `json:"rfidNumber"`
	Contact            string        `json:"contact"`
	Address            string        `json:"address"`
	Email              string        `json:"email,omitempty"`
	VaccinationHistory []Vaccination `json:"vaccinationHistory"`
}

// lookupByRFIDHandler implementa GET /pets/rfid/{rfidCode}.
// Orden del flujo: autenticación, validación de formato, consulta
// con join, composición. Cualquier falla es terminal para el request.
// @Summary Lookup de mascota por RFID
// @Tags pets
// @Param rfidCode path string true "Código RFID de 5 dígitos"
// @Router /pets/rfid/{rfidCode} [get]
func lookupByRFIDHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.ClaimsFrom(r.Context())
		if err != nil {
			// 401 antes de cualquier acceso al store.
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		code := chi.URLParam(r, "rfidCode")
		result, err := svc.LookupByRFID(r.Context(), code)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidRFID):
				writeMessage(w, http.StatusBadRequest, ErrInvalidRFID.Error())
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, ErrNotFound.Error())
			case errors.Is(err, ErrOwnerMissing):
				// Opaco hacia afuera, explícito en el log.
				log.Error("rfid lookup integrity failure", map[string]any{"rfid": code, "err": err.Error()})
				writeMessage(w, http.StatusInternalServerError, "Server error")
			default:
				log.Error("rfid lookup store failure", map[string]any{"rfid": code, "err": err.Error()})
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ComposeLookup(result, claims.Name))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		dob, err := time.Parse("2006-01-02", strings.TrimSpace(req.DOB))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:    req.OwnerID,
			Name:       req.Name,
			PetType:    req.PetType,
			Breed1:     req.Breed1,
			Breed2:     req.Breed2,
			DOB:        dob,
			RFIDNumber: req.RFIDNumber,
			Contact:    req.Contact,
			Address:    req.Address,
			Email:      req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidRFID), errors.Is(err, ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrRFIDTaken):
				writeMessage(w, http.StatusConflict, err.Error())
			default:
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listPetsByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, ErrNotFound.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		var dob *time.Time
		if req.DOB != nil {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.DOB))
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
				return
			}
			dob = &t
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:    req.Name,
			PetType: req.PetType,
			Breed1:  req.Breed1,
			Breed2:  req.Breed2,
			Status:  req.Status,
			DOB:     dob,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetDetailsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		var req updatePetDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.UpdateDetails(r.Context(), chi.URLParam(r, "petID"), UpdateDetailsInput{
			Contact: req.Contact,
			Address: req.Address,
			Email:   req.Email,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, ErrNotFound.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

func addVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		var req addVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
			return
		}

		p, err := svc.AddVaccination(r.Context(), chi.URLParam(r, "petID"), Vaccination{
			Date:            date,
			VaccinationType: req.VaccinationType,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// authMessage mapea el error de auth al mensaje del 401.
func authMessage(err error) string {
	if errors.Is(err, auth.ErrInvalidCredential) {
		return auth.ErrInvalidCredential.Error()
	}
	return auth.ErrNoCredential.Error()
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRFID):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toPetResponse(p Pet) petResponse {
	history := p.VaccinationHistory
	if history == nil {
		history = []Vaccination{}
	}
	return petResponse{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		PetType:            string(p.PetType),
		Breed1:             p.Breed1,
		Breed2:             p.Breed2,
		Status:             string(p.Status),
		DOB:                p.DOB,
		RFIDNumber:         p.RFIDNumber,
		Contact:            p.Contact,
		Address:            p.Address,
		Email:              p.Email,
		VaccinationHistory: history,
	}
}

// writeJSON/writeMessage/writeError se duplican por módulo a propósito,
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
