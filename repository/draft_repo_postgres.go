package repository

import (
	"database/sql"
	"time"

	"pathiram/models"
)

type PostgresDraftRepo struct {
	DB *sql.DB
}

func NewPostgresDraftRepo(db *sql.DB) *PostgresDraftRepo {
	return &PostgresDraftRepo{DB: db}
}

// SaveDraft inserts or updates a draft. CreatedAt is preserved on update;
// UpdatedAt always moves forward.
func (r *PostgresDraftRepo) SaveDraft(draft *models.DeedDraft) error {
	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO deed_draft (id, deed_type, form_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET deed_type=$2, form_data=$3, updated_at=$5
	`, draft.ID, draft.DeedType, draft.FormData, draft.CreatedAt, draft.UpdatedAt)
	return err
}

func (r *PostgresDraftRepo) GetAllDrafts() ([]*models.DeedDraft, error) {
	rows, err := r.DB.Query(`
		SELECT id, deed_type, form_data, created_at, updated_at
		FROM deed_draft ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []*models.DeedDraft
	for rows.Next() {
		d := &models.DeedDraft{}
		if err := rows.Scan(&d.ID, &d.DeedType, &d.FormData, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (r *PostgresDraftRepo) GetDraft(id string) (*models.DeedDraft, error) {
	d := &models.DeedDraft{}
	err := r.DB.QueryRow(`
		SELECT id, deed_type, form_data, created_at, updated_at
		FROM deed_draft WHERE id=$1
	`, id).Scan(&d.ID, &d.DeedType, &d.FormData, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresDraftRepo) DeleteDraft(id string) error {
	_, err := r.DB.Exec(`DELETE FROM deed_draft WHERE id=$1`, id)
	return err
}
