package repository

import "pathiram/models"

// PreparerRepository stores document-preparer records keyed by id.
type PreparerRepository interface {
	SavePreparer(preparer *models.DocumentPreparer) error
	GetAllPreparers() ([]*models.DocumentPreparer, error)
	GetPreparer(id string) (*models.DocumentPreparer, error)
	DeletePreparer(id string) error
}
