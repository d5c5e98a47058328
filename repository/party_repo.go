package repository

import "pathiram/models"

// PartyRepository stores reusable party records keyed by id.
type PartyRepository interface {
	SaveParty(party *models.Party) error
	GetAllParties() ([]*models.Party, error)
	GetParty(id string) (*models.Party, error)
	DeleteParty(id string) error
}
