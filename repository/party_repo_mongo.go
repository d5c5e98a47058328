package repository

import (
	"context"

	"pathiram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "pathiram"

type MongoPartyRepo struct {
	DB *mongo.Client
}

func NewMongoPartyRepo(db *mongo.Client) *MongoPartyRepo {
	return &MongoPartyRepo{DB: db}
}

func (r *MongoPartyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("party")
}

func (r *MongoPartyRepo) SaveParty(party *models.Party) error {
	ctx := context.Background()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": party.ID}, party, opts)
	return err
}

func (r *MongoPartyRepo) GetAllParties() ([]*models.Party, error) {
	ctx := context.Background()
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parties []*models.Party
	if err := cursor.All(ctx, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *MongoPartyRepo) GetParty(id string) (*models.Party, error) {
	ctx := context.Background()
	party := &models.Party{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(party)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return party, nil
}

func (r *MongoPartyRepo) DeleteParty(id string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
