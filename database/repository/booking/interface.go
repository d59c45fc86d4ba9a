package bookingRepo

import (
	"context"
	"time"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed bookings. It satisfies the checkout
// service's Submitter so it can stand in for the external booking service.
type BookingRepository interface {
	SubmitBooking(ctx context.Context, payload models.BookingPayload) (*models.BookingReceipt, error)
	GetByID(ctx context.Context, id string) (*StoredBooking, error)
	EnsureIndexes(ctx context.Context) error
}

// StoredBooking is a booking read back from the collection.
type StoredBooking struct {
	Receipt models.BookingReceipt
	Booking models.BookingPayload
}

// Prices are stored as decimal strings; the driver has no codec for
// decimal.Decimal.
type lineItemDocument struct {
	OfferingID string `bson:"offeringId"`
	Name       string `bson:"name"`
	Price      string `bson:"price"`
	Category   string `bson:"category"`
}

type customerDocument struct {
	Name     string `bson:"name"`
	Date     string `bson:"date"`
	Location string `bson:"location"`
}

type bookingDocument struct {
	ID        string             `bson:"id"`
	Status    string             `bson:"status"`
	Customer  customerDocument   `bson:"customer"`
	LineItems []lineItemDocument `bson:"lineItems"`
	Total     string             `bson:"total"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type mongoBookingRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoBookingRepo returns a repository over the bookings collection of db.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return newMongoBookingRepo(db.Collection("bookings"))
}

func newMongoBookingRepo(coll *mongo.Collection) *mongoBookingRepo {
	return &mongoBookingRepo{
		coll: coll,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
