package repository

import (
	"database/sql"

	"pathiram/models"
)

type PostgresLocationRepo struct {
	DB *sql.DB
}

func NewPostgresLocationRepo(db *sql.DB) *PostgresLocationRepo {
	return &PostgresLocationRepo{DB: db}
}

func (r *PostgresLocationRepo) SaveLocation(location *models.Location) error {
	_, err := r.DB.Exec(`
		INSERT INTO location (id, district, taluk, office_name, village)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET district=$2, taluk=$3, office_name=$4, village=$5
	`, location.ID, location.District, location.Taluk, location.OfficeName, location.Village)
	return err
}

func (r *PostgresLocationRepo) GetAllLocations() ([]*models.Location, error) {
	rows, err := r.DB.Query(`
		SELECT id, district, taluk, office_name, village
		FROM location ORDER BY district, taluk
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		l := &models.Location{}
		if err := rows.Scan(&l.ID, &l.District, &l.Taluk, &l.OfficeName, &l.Village); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *PostgresLocationRepo) GetLocation(id string) (*models.Location, error) {
	l := &models.Location{}
	err := r.DB.QueryRow(`
		SELECT id, district, taluk, office_name, village
		FROM location WHERE id=$1
	`, id).Scan(&l.ID, &l.District, &l.Taluk, &l.OfficeName, &l.Village)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *PostgresLocationRepo) DeleteLocation(id string) error {
	_, err := r.DB.Exec(`DELETE FROM location WHERE id=$1`, id)
	return err
}
