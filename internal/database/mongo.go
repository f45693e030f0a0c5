package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const batchSize = 1000

// MongoDB holds a published copy of the datasets. The delimited files stay
// the system of record; collections are replaced wholesale on each mirror.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	log      zerolog.Logger
}

func NewMongoDB(uri, dbName string, logger zerolog.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
		log:      logger,
	}, nil
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// ReplaceCollection drops the collection and inserts documents in batches.
// It returns the number of inserted documents.
func (m *MongoDB) ReplaceCollection(ctx context.Context, collectionName string, documents []interface{}) (int, error) {
	collection := m.Database.Collection(collectionName)

	if err := collection.Drop(ctx); err != nil {
		return 0, fmt.Errorf("failed to drop collection %s: %w", collectionName, err)
	}

	inserted := 0
	for _, batch := range Batches(documents, batchSize) {
		if err := m.insertBatch(ctx, collection, batch); err != nil {
			return inserted, err
		}
		inserted += len(batch)
	}

	m.log.Info().
		Str("collection", collectionName).
		Int("documents", inserted).
		Msg("mirror completed")
	return inserted, nil
}

// Count returns the number of documents in a collection.
func (m *MongoDB) Count(ctx context.Context, collectionName string) (int64, error) {
	n, err := m.Database.Collection(collectionName).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collectionName, err)
	}
	return n, nil
}

func (m *MongoDB) insertBatch(ctx context.Context, collection *mongo.Collection, documents []interface{}) error {
	batchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := collection.InsertMany(batchCtx, documents); err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	m.log.Debug().Int("documents", len(documents)).Msg("inserted batch")
	return nil
}

// Batches splits documents into consecutive chunks of at most size.
func Batches(documents []interface{}, size int) [][]interface{} {
	if size <= 0 {
		size = batchSize
	}
	var out [][]interface{}
	for start := 0; start < len(documents); start += size {
		end := start + size
		if end > len(documents) {
			end = len(documents)
		}
		out = append(out, documents[start:end])
	}
	return out
}
