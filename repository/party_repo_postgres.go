package repository

import (
	"database/sql"

	"pathiram/models"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

// SaveParty inserts the record or overwrites the one with the same id.
func (r *PostgresPartyRepo) SaveParty(party *models.Party) error {
	_, err := r.DB.Exec(`
		INSERT INTO party (id, name, aadhaar, mobile, address, relationship)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name=$2, aadhaar=$3, mobile=$4, address=$5, relationship=$6
	`, party.ID, party.Name, party.Aadhaar, party.Mobile, party.Address, party.Relationship)
	return err
}

func (r *PostgresPartyRepo) GetAllParties() ([]*models.Party, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, aadhaar, mobile, address, relationship
		FROM party ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parties []*models.Party
	for rows.Next() {
		p := &models.Party{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Aadhaar, &p.Mobile, &p.Address, &p.Relationship); err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

func (r *PostgresPartyRepo) GetParty(id string) (*models.Party, error) {
	p := &models.Party{}
	err := r.DB.QueryRow(`
		SELECT id, name, aadhaar, mobile, address, relationship
		FROM party WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Aadhaar, &p.Mobile, &p.Address, &p.Relationship)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresPartyRepo) DeleteParty(id string) error {
	_, err := r.DB.Exec(`DELETE FROM party WHERE id=$1`, id)
	return err
}
