package models

import "time"

// Deed type tags stored on drafts.
const (
	DeedTypeSale      = "SaleDeed"
	DeedTypeAgreement = "AgreementDeed"
)

// DeedDraft is an in-progress deed form snapshot. FormData holds the full
// SaleDeedData or AgreementDeedData aggregate as JSON; the generated prose is
// recomputed from it on demand and never persisted.
type DeedDraft struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	DeedType  string    `json:"deedType" bson:"deed_type" db:"deed_type"`
	FormData  string    `json:"formData" bson:"form_data" db:"form_data"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at" db:"updated_at"`
}
