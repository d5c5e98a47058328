package repository

import (
	"context"

	"pathiram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPreparerRepo struct {
	DB *mongo.Client
}

func NewMongoPreparerRepo(db *mongo.Client) *MongoPreparerRepo {
	return &MongoPreparerRepo{DB: db}
}

func (r *MongoPreparerRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("document_preparer")
}

func (r *MongoPreparerRepo) SavePreparer(preparer *models.DocumentPreparer) error {
	ctx := context.Background()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": preparer.ID}, preparer, opts)
	return err
}

func (r *MongoPreparerRepo) GetAllPreparers() ([]*models.DocumentPreparer, error) {
	ctx := context.Background()
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var preparers []*models.DocumentPreparer
	if err := cursor.All(ctx, &preparers); err != nil {
		return nil, err
	}
	return preparers, nil
}

func (r *MongoPreparerRepo) GetPreparer(id string) (*models.DocumentPreparer, error) {
	ctx := context.Background()
	preparer := &models.DocumentPreparer{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(preparer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return preparer, nil
}

func (r *MongoPreparerRepo) DeletePreparer(id string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
