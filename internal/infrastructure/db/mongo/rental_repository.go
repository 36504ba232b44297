package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

const rentalsCollection = "rentals"

type RentalRepository struct {
	coll *mongo.Collection
}

func NewRentalRepository(db *mongo.Database) *RentalRepository {
	return &RentalRepository{coll: db.Collection(rentalsCollection)}
}

type mongoRental struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	CarID         string             `bson:"car_id"`
	RentStartedAt time.Time          `bson:"rent_started_at"`
	RentEndedAt   *time.Time         `bson:"rent_ended_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (m mongoRental) toDomain() *domain.Rental {
	rental := &domain.Rental{
		ID:            m.ID.Hex(),
		UserID:        m.UserID,
		CarID:         m.CarID,
		RentStartedAt: m.RentStartedAt.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
	if m.RentEndedAt != nil {
		ended := m.RentEndedAt.UTC()
		rental.RentEndedAt = &ended
	}
	return rental
}

// FindActiveByUser returns the user's rental whose end date is absent or not
// yet passed, or nil when none exists.
func (r *RentalRepository) FindActiveByUser(ctx context.Context, userID string, now time.Time) (*domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"$or": bson.A{
			bson.M{"rent_ended_at": nil},
			bson.M{"rent_ended_at": bson.M{"$gte": now}},
		},
	}

	var mr mongoRental
	if err := r.coll.FindOne(ctx, filter).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active rental: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRental{
		UserID:        rental.UserID,
		CarID:         rental.CarID,
		RentStartedAt: rental.RentStartedAt,
		RentEndedAt:   rental.RentEndedAt,
		CreatedAt:     rental.CreatedAt,
		UpdatedAt:     rental.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert rental: %w", err)
	}

	created := *rental
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// CarIDsRentedAt returns the ids of cars with a rental still in effect at the
// given instant.
func (r *RentalRepository) CarIDsRentedAt(ctx context.Context, at time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "car_id", bson.M{
		"$or": bson.A{
			bson.M{"rent_ended_at": nil},
			bson.M{"rent_ended_at": bson.M{"$gte": at}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rented car ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// EnsureIndexes creates lookup indexes for the conflict and availability
// queries.
func (r *RentalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "rent_ended_at", Value: 1}}},
		{Keys: bson.D{{Key: "car_id", Value: 1}, {Key: "rent_ended_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
