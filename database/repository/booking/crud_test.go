package bookingRepo

import (
	"context"
	"testing"
	"time"

	"weddingplanner/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func samplePayload() models.BookingPayload {
	return models.BookingPayload{
		Customer: models.Customer{Name: "Ana", Date: "2026-06-20", Location: "Quito"},
		LineItems: []models.OrderLineItem{
			{OfferingID: "c1", Name: "Buffet", Price: decimal.RequireFromString("500.50"), Category: models.CategoryCatering},
			{OfferingID: "m1", Name: "DJ", Price: decimal.NewFromInt(300), Category: models.CategoryMusic},
		},
		Total: decimal.RequireFromString("800.50"),
	}
}

func TestDocumentRoundTripKeepsDecimalPrecision(t *testing.T) {
	doc := toDocument(samplePayload())
	assert.Equal(t, "500.5", doc.LineItems[0].Price)
	assert.Equal(t, "catering", doc.LineItems[0].Category)

	back, err := fromDocument(doc)
	require.NoError(t, err)
	assert.True(t, back.Total.Equal(decimal.RequireFromString("800.50")))
	assert.Equal(t, models.CategoryMusic, back.LineItems[1].Category)
}

func TestFromDocumentRejectsBadPrice(t *testing.T) {
	doc := toDocument(samplePayload())
	doc.LineItems[0].Price = "cheap"
	_, err := fromDocument(doc)
	assert.Error(t, err)
}

func TestMongoBookingRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	fixed := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("submit inserts a document", func(mt *mtest.T) {
		repo := newMongoBookingRepo(mt.Coll)
		repo.now = func() time.Time { return fixed }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		receipt, err := repo.SubmitBooking(context.Background(), samplePayload())
		require.NoError(t, err)
		assert.NotEmpty(t, receipt.BookingID)
		assert.Equal(t, statusRecorded, receipt.Status)
		assert.Equal(t, fixed, receipt.ReceivedAt)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "insert", started.CommandName)
	})

	mt.Run("submit surfaces write errors", func(mt *mtest.T) {
		repo := newMongoBookingRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key",
		}))

		_, err := repo.SubmitBooking(context.Background(), samplePayload())
		assert.Error(t, err)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := newMongoBookingRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "bk-1"},
			{Key: "status", Value: statusRecorded},
			{Key: "customer", Value: bson.D{
				{Key: "name", Value: "Ana"},
				{Key: "date", Value: "2026-06-20"},
				{Key: "location", Value: "Quito"},
			}},
			{Key: "lineItems", Value: bson.A{
				bson.D{
					{Key: "offeringId", Value: "m1"},
					{Key: "name", Value: "DJ"},
					{Key: "price", Value: "300"},
					{Key: "category", Value: "music"},
				},
			}},
			{Key: "total", Value: "300"},
			{Key: "createdAt", Value: fixed},
		}))

		got, err := repo.GetByID(context.Background(), "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "bk-1", got.Receipt.BookingID)
		assert.Equal(t, "Ana", got.Booking.Customer.Name)
		require.Len(t, got.Booking.LineItems, 1)
		assert.True(t, got.Booking.Total.Equal(decimal.NewFromInt(300)))
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := newMongoBookingRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
