package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/daybook-app/daybook/internal/api/respond"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/services"
)

type ConfigHandler struct {
	svc *services.ConfigService
}

func NewConfigHandler(svc *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	cfg, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("get config failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, cfg)
}

func (h *ConfigHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	var in model.UserConfig
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	cfg, err := h.svc.Save(r.Context(), userID, &in)
	if err != nil {
		log.Error().Err(err).Msg("save config failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, cfg)
}
