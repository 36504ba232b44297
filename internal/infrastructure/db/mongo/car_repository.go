package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

const carsCollection = "cars"

type CarRepository struct {
	coll *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{coll: db.Collection(carsCollection)}
}

type mongoCar struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Price             int64              `bson:"price"`
	Size              string             `bson:"size"`
	Image             string             `bson:"image"`
	IsCurrentlyRented bool               `bson:"is_currently_rented"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (c mongoCar) toDomain() domain.Car {
	return domain.Car{
		ID:                c.ID.Hex(),
		Name:              c.Name,
		Price:             c.Price,
		Size:              c.Size,
		Image:             c.Image,
		IsCurrentlyRented: c.IsCurrentlyRented,
		CreatedAt:         c.CreatedAt.UTC(),
		UpdatedAt:         c.UpdatedAt.UTC(),
	}
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var mc mongoCar
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find car: %w", err)
	}

	car := mc.toDomain()
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context, filter ports.CarFilter) ([]domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, carQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := make([]domain.Car, 0)
	for cursor.Next(ctx) {
		var mc mongoCar
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode car: %w", err)
		}
		cars = append(cars, mc.toDomain())
	}
	return cars, cursor.Err()
}

func (r *CarRepository) Count(ctx context.Context, filter ports.CarFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, carQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return count, nil
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCar{
		Name:              car.Name,
		Price:             car.Price,
		Size:              car.Size,
		Image:             car.Image,
		IsCurrentlyRented: car.IsCurrentlyRented,
		CreatedAt:         car.CreatedAt,
		UpdatedAt:         car.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert car: %w", err)
	}

	created := *car
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(car.ID)
	if err != nil {
		return fmt.Errorf("update car: invalid id %q", car.ID)
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":                car.Name,
		"price":               car.Price,
		"size":                car.Size,
		"image":               car.Image,
		"is_currently_rented": car.IsCurrentlyRented,
		"updated_at":          car.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete car: invalid id %q", id)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

// carQuery renders a ports.CarFilter as a bson filter. ExcludeIDs that are
// not valid object ids are skipped.
func carQuery(filter ports.CarFilter) bson.M {
	query := bson.M{}
	if filter.Size != "" {
		query["size"] = filter.Size
	}
	if len(filter.ExcludeIDs) > 0 {
		oids := make([]primitive.ObjectID, 0, len(filter.ExcludeIDs))
		for _, id := range filter.ExcludeIDs {
			if oid, err := primitive.ObjectIDFromHex(id); err == nil {
				oids = append(oids, oid)
			}
		}
		if len(oids) > 0 {
			query["_id"] = bson.M{"$nin": oids}
		}
	}
	return query
}
