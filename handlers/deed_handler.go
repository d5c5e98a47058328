package handlers

import (
	"encoding/json"
	"net/http"

	"pathiram/tamil"
)

// DeedHandler turns posted form data into deed prose. It backs the live
// preview, so it accepts arbitrarily incomplete input and always answers
// with text.
type DeedHandler struct{}

type deedTextResponse struct {
	Text string `json:"text"`
}

func (h *DeedHandler) SaleDeedText(w http.ResponseWriter, r *http.Request) {
	var data tamil.SaleDeedData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid sale deed payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, deedTextResponse{Text: tamil.GenerateSaleDeed(data)})
}

func (h *DeedHandler) AgreementDeedText(w http.ResponseWriter, r *http.Request) {
	var data tamil.AgreementDeedData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid agreement deed payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, deedTextResponse{Text: tamil.GenerateAgreementDeed(data)})
}
