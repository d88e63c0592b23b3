package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc))
		vr.Post("/", createVisitHandler(svc))
		vr.Put("/{visitID}", updateVisitHandler(svc))
	})
}

type createVisitRequest struct {
	PetID   string `json:"petId"`
	OwnerID string `json:"ownerId"`
	Date    string `json:"date"` // YYYY-MM-DD o RFC3339
	Comment string `json:"comment"`
}

type updateVisitRequest struct {
	Date    *string `json:"date"`
	Comment *string `json:"comment"`
}

type visitResponse struct {
	ID      string    `json:"id"`
	PetID   string    `json:"petId"`
	OwnerID string    `json:"ownerId"`
	Date    time.Time `json:"date"`
	Comment string    `json:"comment"`
}

// listVisitsHandler lista visitas; acepta ?petId= para filtrar.
// @Summary Listar visitas
// @Tags visits
// @Router /visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		var (
			items []Visit
			err   error
		)
		if petID := strings.TrimSpace(r.URL.Query().Get("petId")); petID != "" {
			items, err = svc.ListByPet(r.Context(), petID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createVisitHandler registra una visita.
// @Summary Crear visita
// @Tags visits
// @Router /visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			PetID:   req.PetID,
			OwnerID: req.OwnerID,
			Date:    date,
			Comment: req.Comment,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

// updateVisitHandler edita fecha o comentario de una visita.
// @Summary Actualizar visita
// @Tags visits
// @Router /visits/{visitID} [put]
func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		var req updateVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		var in UpdateInput
		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
				return
			}
			in.Date = &date
		}
		in.Comment = req.Comment

		v, err := svc.Update(r.Context(), chi.URLParam(r, "visitID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:      v.ID,
		PetID:   v.PetID,
		OwnerID: v.OwnerID,
		Date:    v.Date,
		Comment: v.Comment,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": strings.TrimSpace(msg)})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}
