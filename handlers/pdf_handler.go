package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pathiram/models"
	"pathiram/repository"
	"pathiram/tamil"
	"pathiram/utils"
)

type PDFHandler struct {
	Repo     repository.DraftRepository
	SavePath string
}

// DeedPDF regenerates the prose for a stored draft and prints it to an A4
// PDF. The file is kept on disk and, when R2 is configured, uploaded there
// too.
func (h *PDFHandler) DeedPDF(w http.ResponseWriter, r *http.Request) {
	draftID := r.URL.Query().Get("id")
	if draftID == "" {
		http.Error(w, "missing draft id", http.StatusBadRequest)
		return
	}

	draft, err := h.Repo.GetDraft(draftID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if draft == nil {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}

	text, title, err := renderDraft(draft)
	if err != nil {
		http.Error(w, "failed to parse draft form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateDeedPDF(title, text)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("deed_%s_%d.pdf", draftID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// R2 is optional; the local copy already exists.
	fileURL := ""
	if url, err := utils.UploadToR2(pdfBytes, filename); err == nil {
		fileURL = url
	} else {
		fmt.Printf("R2 upload skipped for %s: %v\n", filename, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"file":    filename,
		"url":     fileURL,
	})
}

// renderDraft recomputes the prose from the stored form data.
func renderDraft(draft *models.DeedDraft) (text, title string, err error) {
	switch draft.DeedType {
	case models.DeedTypeAgreement:
		var data tamil.AgreementDeedData
		if err := json.Unmarshal([]byte(draft.FormData), &data); err != nil {
			return "", "", err
		}
		return tamil.GenerateAgreementDeed(data), "கிரைய உடன்படிக்கை பத்திரம்", nil
	default:
		var data tamil.SaleDeedData
		if err := json.Unmarshal([]byte(draft.FormData), &data); err != nil {
			return "", "", err
		}
		return tamil.GenerateSaleDeed(data), "கிரையப் பத்திரம்", nil
	}
}
