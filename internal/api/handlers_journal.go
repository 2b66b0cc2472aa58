package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/daybook-app/daybook/internal/api/respond"
	"github.com/daybook-app/daybook/internal/api/validate"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/services"
)

type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// SaveJournal creates or updates a journal document.
func (h *JournalHandler) SaveJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	var in struct {
		ID      string `json:"id"`
		Date    string `json:"date"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.DateKey(in.Date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	j := &model.Journal{JournalID: in.ID, Date: in.Date, Title: in.Title, Content: in.Content}
	out, err := h.svc.Save(r.Context(), userID, j)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			respond.WriteUnauthorized(w, "Not authorized")
			return
		}
		log.Error().Err(err).Msg("save journal failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListJournals returns the user's journals for a date.
func (h *JournalHandler) ListJournals(w http.ResponseWriter, r *http.Request) {
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
	list, err := h.svc.ListByDate(r.Context(), userID, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("list journals failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	if list == nil {
		list = []*model.Journal{}
	}
	respond.WriteJSON(w, http.StatusOK, list)
}

// DeleteJournal removes a journal owned by the caller.
func (h *JournalHandler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "No token, authorization denied")
		return
	}
	journalID := mux.Vars(r)["id"]
	if journalID == "" {
		respond.WriteBadRequest(w, "id required")
		return
	}
	if err := h.svc.Delete(r.Context(), userID, journalID); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			respond.WriteUnauthorized(w, "Not authorized")
			return
		}
		log.Error().Err(err).Str("journalId", journalID).Msg("delete journal failed")
		respond.WriteInternalError(w, "Server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Journal removed"})
}
