package handlers

import (
	"encoding/json"
	"net/http"

	"pathiram/models"
	"pathiram/repository"

	"github.com/google/uuid"
)

type PreparerHandler struct {
	Repo repository.PreparerRepository
}

func (h *PreparerHandler) SavePreparer(w http.ResponseWriter, r *http.Request) {
	var preparer models.DocumentPreparer
	if err := json.NewDecoder(r.Body).Decode(&preparer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if preparer.ID == "" {
		preparer.ID = uuid.NewString()
	}

	if err := h.Repo.SavePreparer(&preparer); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, preparer)
}

func (h *PreparerHandler) GetAllPreparers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetAllPreparers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.DocumentPreparer{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PreparerHandler) GetPreparerByID(w http.ResponseWriter, r *http.Request, id string) {
	preparer, err := h.Repo.GetPreparer(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if preparer == nil {
		http.Error(w, "preparer not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, preparer)
}

func (h *PreparerHandler) DeletePreparer(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing preparer id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletePreparer(id); err != nil {
		http.Error(w, "failed to delete preparer: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Preparer deleted successfully"})
}
