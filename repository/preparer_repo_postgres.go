package repository

import (
	"database/sql"

	"pathiram/models"
)

type PostgresPreparerRepo struct {
	DB *sql.DB
}

func NewPostgresPreparerRepo(db *sql.DB) *PostgresPreparerRepo {
	return &PostgresPreparerRepo{DB: db}
}

func (r *PostgresPreparerRepo) SavePreparer(preparer *models.DocumentPreparer) error {
	_, err := r.DB.Exec(`
		INSERT INTO document_preparer (id, name, office, mobile)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name=$2, office=$3, mobile=$4
	`, preparer.ID, preparer.Name, preparer.Office, preparer.Mobile)
	return err
}

func (r *PostgresPreparerRepo) GetAllPreparers() ([]*models.DocumentPreparer, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, office, mobile
		FROM document_preparer ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var preparers []*models.DocumentPreparer
	for rows.Next() {
		p := &models.DocumentPreparer{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Office, &p.Mobile); err != nil {
			return nil, err
		}
		preparers = append(preparers, p)
	}
	return preparers, rows.Err()
}

func (r *PostgresPreparerRepo) GetPreparer(id string) (*models.DocumentPreparer, error) {
	p := &models.DocumentPreparer{}
	err := r.DB.QueryRow(`
		SELECT id, name, office, mobile
		FROM document_preparer WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Office, &p.Mobile)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresPreparerRepo) DeletePreparer(id string) error {
	_, err := r.DB.Exec(`DELETE FROM document_preparer WHERE id=$1`, id)
	return err
}
