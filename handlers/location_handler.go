package handlers

import (
	"encoding/json"
	"net/http"

	"pathiram/models"
	"pathiram/repository"

	"github.com/google/uuid"
)

type LocationHandler struct {
	Repo repository.LocationRepository
}

func (h *LocationHandler) SaveLocation(w http.ResponseWriter, r *http.Request) {
	var location models.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if location.ID == "" {
		location.ID = uuid.NewString()
	}

	if err := h.Repo.SaveLocation(&location); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetAllLocations()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Location{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *LocationHandler) GetLocationByID(w http.ResponseWriter, r *http.Request, id string) {
	location, err := h.Repo.GetLocation(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if location == nil {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing location id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteLocation(id); err != nil {
		http.Error(w, "failed to delete location: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Location deleted successfully"})
}
