package repository

import "pathiram/models"

// DraftRepository stores in-progress deed drafts keyed by id.
type DraftRepository interface {
	SaveDraft(draft *models.DeedDraft) error
	GetAllDrafts() ([]*models.DeedDraft, error)
	GetDraft(id string) (*models.DeedDraft, error)
	DeleteDraft(id string) error
}
