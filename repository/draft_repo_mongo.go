package repository

import (
	"context"
	"time"

	"pathiram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDraftRepo struct {
	DB *mongo.Client
}

func NewMongoDraftRepo(db *mongo.Client) *MongoDraftRepo {
	return &MongoDraftRepo{DB: db}
}

func (r *MongoDraftRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("deed_draft")
}

func (r *MongoDraftRepo) SaveDraft(draft *models.DeedDraft) error {
	ctx := context.Background()
	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": draft.ID}, draft, opts)
	return err
}

func (r *MongoDraftRepo) GetAllDrafts() ([]*models.DeedDraft, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drafts []*models.DeedDraft
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *MongoDraftRepo) GetDraft(id string) (*models.DeedDraft, error) {
	ctx := context.Background()
	draft := &models.DeedDraft{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return draft, nil
}

func (r *MongoDraftRepo) DeleteDraft(id string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
