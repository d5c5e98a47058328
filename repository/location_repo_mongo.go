package repository

import (
	"context"

	"pathiram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLocationRepo struct {
	DB *mongo.Client
}

func NewMongoLocationRepo(db *mongo.Client) *MongoLocationRepo {
	return &MongoLocationRepo{DB: db}
}

func (r *MongoLocationRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("location")
}

func (r *MongoLocationRepo) SaveLocation(location *models.Location) error {
	ctx := context.Background()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": location.ID}, location, opts)
	return err
}

func (r *MongoLocationRepo) GetAllLocations() ([]*models.Location, error) {
	ctx := context.Background()
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []*models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *MongoLocationRepo) GetLocation(id string) (*models.Location, error) {
	ctx := context.Background()
	location := &models.Location{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return location, nil
}

func (r *MongoLocationRepo) DeleteLocation(id string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
