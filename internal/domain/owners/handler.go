package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listOwnersHandler(svc))
		ur.Post("/signup", signupHandler(svc))
		ur.Post("/login", loginHandler(svc))
		ur.Put("/{userID}", updateOwnerHandler(svc))
	})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  ownerResponse `json:"user"`
}

// ownerResponse nunca incluye el hash de password.
type ownerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}

type updateOwnerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Contact *string `json:"contact"`
}

// signupHandler registra un dueño.
// @Summary Registrar dueño
// @Tags users
// @Router /users/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Signup(r.Context(), SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Address:  req.Address,
			Contact:  req.Contact,
			Password: req.Password,
			Role:     req.Role,
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

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// loginHandler autentica un dueño y devuelve un token.
// @Summary Login de dueño
// @Tags users
// @Router /users/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toOwnerResponse(o)})
	}
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.ClaimsFrom(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.ClaimsFrom(r.Context())
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		userID := chi.URLParam(r, "userID")

		// Un dueño solo se edita a sí mismo; doctores editan a cualquiera.
		if claims.UserID != userID && claims.Role != string(RoleDoctor) {
			writeMessage(w, http.StatusForbidden, "forbidden")
			return
		}

		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Update(r.Context(), userID, UpdateInput{
			Name:    req.Name,
			Address: req.Address,
			Contact: req.Contact,
		})
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

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:      o.ID,
		Name:    o.Name,
		Email:   o.Email,
		Address: o.Address,
		Contact: o.Contact,
		Role:    string(o.Role),
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
	writeJSON(w, status, map[string]string{"message": strings.TrimSpace(msg)})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}
