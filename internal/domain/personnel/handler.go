package personnel

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/personnel", func(pr chi.Router) {
		pr.Post("/signup", signupHandler(svc))
		pr.Post("/login", loginHandler(svc))
	})
}

type signupRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse es lo que la app móvil guarda: {"token": ...}.
type loginResponse struct {
	Token     string            `json:"token"`
	Personnel personnelResponse `json:"personnel"`
}

type personnelResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Role          string `json:"role"`
}

// signupHandler registra una cuenta de personal.
// @Summary Registrar personal
// @Tags personnel
// @Router /personnel/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Signup(r.Context(), SignupInput{
			Name:          req.Name,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
			Password:      req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				writeMessage(w, http.StatusConflict, err.Error())
			case errors.Is(err, ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPersonnelResponse(p))
	}
}

// loginHandler autentica personal y devuelve el bearer token.
// @Summary Login de personal
// @Tags personnel
// @Router /personnel/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: token, Personnel: toPersonnelResponse(p)})
	}
}

func toPersonnelResponse(p Personnel) personnelResponse {
	return personnelResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		ContactNumber: p.ContactNumber,
		Role:          p.Role,
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
