package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/raushankrgupta/product-clipper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	settingsCollection = "settings"
	settingsDocID      = "default"
)

type settingsDoc struct {
	ID     string          `bson:"_id"`
	Fields map[string]bool `bson:"fields"`
}

// MongoStore keeps the toggles in a single document
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo connects and pings the server
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(settingsCollection),
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) (models.Settings, error) {
	var doc settingsDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return fromDoc(doc).WithDefaults(), nil
}

func (s *MongoStore) Save(ctx context.Context, settings models.Settings) error {
	doc := toDoc(settings.WithDefaults())
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toDoc(settings models.Settings) settingsDoc {
	doc := settingsDoc{ID: settingsDocID, Fields: make(map[string]bool, len(settings))}
	for k, v := range settings {
		doc.Fields[string(k)] = v
	}
	return doc
}

func fromDoc(doc settingsDoc) models.Settings {
	settings := make(models.Settings, len(doc.Fields))
	for k, v := range doc.Fields {
		settings[models.FieldKey(k)] = v
	}
	return settings
}
