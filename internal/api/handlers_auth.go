package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/daybook-app/daybook/internal/api/respond"
	"github.com/daybook-app/daybook/internal/api/validate"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Register(in.Username, in.Email, in.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	sess, err := h.svc.Register(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			respond.WriteBadRequest(w, "User already exists")
			return
		}
		log.Error().Err(err).Msg("register failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, sess)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Login(in.Email, in.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	sess, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		// unknown email and wrong password produce the same reply
		if errors.Is(err, model.ErrUnauthorized) {
			respond.WriteBadRequest(w, "Invalid Credentials")
			return
		}
		log.Error().Err(err).Msg("login failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, sess)
}

func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	var in struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.NonEmpty("username", in.Username); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	u, err := h.svc.UpdateUsername(r.Context(), userID, in.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "User not found")
			return
		}
		log.Error().Err(err).Msg("update user failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
