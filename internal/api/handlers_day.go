package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/daybook-app/daybook/internal/api/respond"
	"github.com/daybook-app/daybook/internal/api/validate"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/services"
)

type DayHandler struct {
	svc *services.DayService
}

func NewDayHandler(svc *services.DayService) *DayHandler { return &DayHandler{svc: svc} }

func (h *DayHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	date := mux.Vars(r)["date"]
	if err := validate.DateKey(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	entry, err := h.svc.GetDay(r.Context(), userID, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("get day failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, entry)
}

func (h *DayHandler) SaveDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	date := mux.Vars(r)["date"]
	if err := validate.DateKey(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	var patch services.DayPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	entry, err := h.svc.SaveDay(r.Context(), userID, date, patch)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("save day failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, entry)
}
