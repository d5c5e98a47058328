package handlers

import (
	"encoding/json"
	"net/http"

	"pathiram/models"
	"pathiram/repository"

	"github.com/google/uuid"
)

type DraftHandler struct {
	Repo repository.DraftRepository
}

// SaveDraft inserts or updates a draft snapshot. FormData is stored opaque;
// it is only parsed again when the prose or a PDF is requested.
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.DeedDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if draft.DeedType != models.DeedTypeSale && draft.DeedType != models.DeedTypeAgreement {
		http.Error(w, "unknown deed type: "+draft.DeedType, http.StatusBadRequest)
		return
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}

	if err := h.Repo.SaveDraft(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, draft)
}

func (h *DraftHandler) GetAllDrafts(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetAllDrafts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.DeedDraft{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *DraftHandler) GetDraftByID(w http.ResponseWriter, r *http.Request, id string) {
	draft, err := h.Repo.GetDraft(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if draft == nil {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing draft id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteDraft(id); err != nil {
		http.Error(w, "failed to delete draft: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Draft deleted successfully"})
}
