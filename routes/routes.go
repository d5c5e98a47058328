package routes

import (
	"net/http"

	"pathiram/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// crudRoutes wires the shared record-store route shape: the collection path
// handles create/update/list/delete, the id subpath handles get-by-id.
func crudRoutes(mux *http.ServeMux, base string,
	save, getAll, remove http.HandlerFunc,
	getByID func(http.ResponseWriter, *http.Request, string),
) {
	mux.Handle(base, withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			save(w, r)
		case http.MethodGet:
			getAll(w, r)
		case http.MethodDelete:
			remove(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	mux.Handle(base+"/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len(base)+1:]
		if id != "" && r.Method == http.MethodGet {
			getByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))
}

func SetupRoutes(
	mux *http.ServeMux,
	userHandler *handlers.UserHandler,
	partyHandler *handlers.PartyHandler,
	locationHandler *handlers.LocationHandler,
	preparerHandler *handlers.PreparerHandler,
	draftHandler *handlers.DraftHandler,
	deedHandler *handlers.DeedHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	mux.Handle("/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	mux.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))

	// Record stores
	crudRoutes(mux, "/parties", partyHandler.SaveParty, partyHandler.GetAllParties, partyHandler.DeleteParty, partyHandler.GetPartyByID)
	crudRoutes(mux, "/locations", locationHandler.SaveLocation, locationHandler.GetAllLocations, locationHandler.DeleteLocation, locationHandler.GetLocationByID)
	crudRoutes(mux, "/preparers", preparerHandler.SavePreparer, preparerHandler.GetAllPreparers, preparerHandler.DeletePreparer, preparerHandler.GetPreparerByID)
	crudRoutes(mux, "/drafts", draftHandler.SaveDraft, draftHandler.GetAllDrafts, draftHandler.DeleteDraft, draftHandler.GetDraftByID)

	// Deed text generation (live preview) and PDF printing
	mux.Handle("/deed/sale", withCORS(http.HandlerFunc(handlers.RecoverWrapper(deedHandler.SaleDeedText))))
	mux.Handle("/deed/agreement", withCORS(http.HandlerFunc(handlers.RecoverWrapper(deedHandler.AgreementDeedText))))
	mux.Handle("/deed/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.DeedPDF))))
}
