package repository

import "pathiram/models"

// LocationRepository stores reusable locality records keyed by id.
type LocationRepository interface {
	SaveLocation(location *models.Location) error
	GetAllLocations() ([]*models.Location, error)
	GetLocation(id string) (*models.Location, error)
	DeleteLocation(id string) error
}
