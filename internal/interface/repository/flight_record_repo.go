package repository

import (
	"context"
	"time"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// flightRecord wraps the extraction result with persistence metadata
type flightRecord struct {
	entity.Flight `bson:",inline"`
	Source        string    `bson:"source"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(db *mongo.Database) repository.FlightRecordRepository {
	collection := db.Collection("flight_records")

	// Create index on pnr for queries
	ctx := context.Background()
	pnrIndex := mongo.IndexModel{
		Keys: bson.M{"pnr": 1},
	}
	collection.Indexes().CreateOne(ctx, pnrIndex)

	return &MongoFlightRecordRepository{
		collection: collection,
	}
}

// Save stores one extraction result. source records which path produced it
// ("gds_regex" or "llm").
func (r *MongoFlightRecordRepository) Save(ctx context.Context, flight *entity.Flight, source string) error {
	now := time.Now()
	record := flightRecord{
		Flight:    *flight,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"_id": flight.ID}

	_, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{"$set": record},
		opts,
	)
	return err
}

// FindByID finds one extraction result by its identifier
func (r *MongoFlightRecordRepository) FindByID(ctx context.Context, id string) (*entity.Flight, error) {
	var record flightRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record.Flight, nil
}

// FindByPNR finds every extraction result sharing a booking reference
func (r *MongoFlightRecordRepository) FindByPNR(ctx context.Context, pnr string) ([]*entity.Flight, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"pnr": pnr})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []*entity.Flight
	for cursor.Next(ctx) {
		var record flightRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		flights = append(flights, &record.Flight)
	}
	return flights, cursor.Err()
}
