package handlers

import (
	"encoding/json"
	"net/http"

	"pathiram/models"
	"pathiram/repository"

	"github.com/google/uuid"
)

type PartyHandler struct {
	Repo repository.PartyRepository
}

// SaveParty handles POST and PUT: a blank id means a new record.
func (h *PartyHandler) SaveParty(w http.ResponseWriter, r *http.Request) {
	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if party.ID == "" {
		party.ID = uuid.NewString()
	}

	if err := h.Repo.SaveParty(&party); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, party)
}

func (h *PartyHandler) GetAllParties(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetAllParties()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Party{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PartyHandler) GetPartyByID(w http.ResponseWriter, r *http.Request, id string) {
	party, err := h.Repo.GetParty(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if party == nil {
		http.Error(w, "party not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing party id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteParty(id); err != nil {
		http.Error(w, "failed to delete party: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Party deleted successfully"})
}
