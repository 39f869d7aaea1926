package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roombook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const bookingsCollection = "bookings"

// bookingDocument adds the arrival timestamp used for ordering.
type bookingDocument struct {
	models.Booking `bson:",inline"`
	CreatedAt      time.Time `bson:"createdAt"`
}

type mongoBookingRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
	newID  IDGenerator
	now    func() time.Time
}

// NewMongoBookingRepo returns a BookingRepository backed by the "bookings" collection of db.
func NewMongoBookingRepo(db *mongo.Database, logger *zap.Logger, newID IDGenerator) BookingRepository {
	if newID == nil {
		newID = NewID
	}
	return &mongoBookingRepo{
		coll:   db.Collection(bookingsCollection),
		logger: logger.With(zap.String("component", "mongo_booking_repo")),
		newID:  newID,
		now:    time.Now,
	}
}

// FetchAll returns bookings newest first, matching the prepend order of the local store.
func (r *mongoBookingRepo) FetchAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	bookings := make([]models.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, d.Booking)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, in models.BookingCreationRequest) (*models.Booking, error) {
	doc := bookingDocument{
		Booking:   in.ToBooking(r.newID()),
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	r.logger.Info("booking created", zap.String("id", doc.ID), zap.String("date", doc.Date))
	return &doc.Booking, nil
}

func (r *mongoBookingRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

// EnsureIndexes creates the indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
