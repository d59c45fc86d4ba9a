package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"weddingplanner/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned by GetByID for unknown ids.
var ErrBookingNotFound = errors.New("booking not found")

const statusRecorded = "recorded"

// SubmitBooking inserts the booking and returns its receipt.
func (r *mongoBookingRepo) SubmitBooking(ctx context.Context, payload models.BookingPayload) (*models.BookingReceipt, error) {
	doc := toDocument(payload)
	doc.ID = uuid.New().String()
	doc.Status = statusRecorded
	doc.CreatedAt = r.now()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &models.BookingReceipt{
		BookingID:  doc.ID,
		Status:     doc.Status,
		ReceivedAt: doc.CreatedAt,
	}, nil
}

// GetByID returns a stored booking by its id.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*StoredBooking, error) {
	var doc bookingDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	payload, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &StoredBooking{
		Receipt: models.BookingReceipt{BookingID: doc.ID, Status: doc.Status, ReceivedAt: doc.CreatedAt},
		Booking: payload,
	}, nil
}

func toDocument(p models.BookingPayload) bookingDocument {
	items := make([]lineItemDocument, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		items = append(items, lineItemDocument{
			OfferingID: li.OfferingID,
			Name:       li.Name,
			Price:      li.Price.String(),
			Category:   li.Category.String(),
		})
	}
	return bookingDocument{
		Customer: customerDocument{
			Name:     p.Customer.Name,
			Date:     p.Customer.Date,
			Location: p.Customer.Location,
		},
		LineItems: items,
		Total:     p.Total.String(),
	}
}

func fromDocument(doc bookingDocument) (models.BookingPayload, error) {
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return models.BookingPayload{}, fmt.Errorf("booking %s has invalid total %q: %w", doc.ID, doc.Total, err)
	}
	items := make([]models.OrderLineItem, 0, len(doc.LineItems))
	for _, li := range doc.LineItems {
		price, err := decimal.NewFromString(li.Price)
		if err != nil {
			return models.BookingPayload{}, fmt.Errorf("booking %s has invalid price %q: %w", doc.ID, li.Price, err)
		}
		cat, err := models.ParseCategory(li.Category)
		if err != nil {
			return models.BookingPayload{}, fmt.Errorf("booking %s: %w", doc.ID, err)
		}
		items = append(items, models.OrderLineItem{
			OfferingID: li.OfferingID,
			Name:       li.Name,
			Price:      price,
			Category:   cat,
		})
	}
	return models.BookingPayload{
		Customer: models.Customer{
			Name:     doc.Customer.Name,
			Date:     doc.Customer.Date,
			Location: doc.Customer.Location,
		},
		LineItems: items,
		Total:     total,
	}, nil
}
