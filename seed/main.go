package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"weddingplanner/config"
	"weddingplanner/database"
	bookingRepo "weddingplanner/database/repository/booking"
	"weddingplanner/models"
	"weddingplanner/services/booking"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the bookings collection with demo data so the "mongo" booking
// backend has something to show. Optionally prints an operator entry.
func main() {
	count := flag.Int("n", 20, "number of bookings to insert")
	adminPassword := flag.String("admin-password", "", "print an administrator operator entry for this password")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if *adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("seed: hash password", zap.Error(err))
		}
		fmt.Printf("OPERATORS:\n  - email: admin@weddingplanner.local\n    password_hash: %q\n    role: administrator\n", string(hash))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("seed: connect to MongoDB", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := bookingRepo.NewMongoBookingRepo(client.Database(config.AppConfig.DatabaseName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("seed: ensure indexes", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cat := demoCatalog()
	inserted := 0
	for i := 0; i < *count; i++ {
		payload := booking.BuildSummary(randomSelection(rng, cat, i), cat).Payload()
		receipt, err := repo.SubmitBooking(ctx, payload)
		if err != nil {
			logger.Error("seed: insert booking", zap.Int("index", i), zap.Error(err))
			continue
		}
		inserted++
		logger.Debug("seed: booking inserted",
			zap.String("bookingId", receipt.BookingID),
			zap.String("total", payload.Total.StringFixed(2)))
	}
	logger.Info("seed: done", zap.Int("inserted", inserted), zap.Int("requested", *count))
}

var (
	demoClients   = []string{"Ana Torres", "Luis Gómez", "María Pérez", "Carlos Ruiz", "Lucía Díaz"}
	demoLocations = []string{"Quito", "Guayaquil", "Cuenca", "Loja", "Manta"}
)

func demoCatalog() models.Catalog {
	cat := models.NewCatalog()
	add := func(c models.Category, prefix string, prices ...string) {
		list := make([]models.ServiceOffering, 0, len(prices))
		for i, p := range prices {
			list = append(list, models.ServiceOffering{
				ID:       fmt.Sprintf("%s-%d", prefix, i+1),
				Name:     fmt.Sprintf("%s package %d", prefix, i+1),
				Price:    decimal.RequireFromString(p),
				Category: c,
			})
		}
		cat.Set(c, list)
	}
	add(models.CategoryCatering, "catering", "450", "800", "1250.50")
	add(models.CategoryMusic, "music", "300", "520.75")
	add(models.CategoryDecoration, "decoration", "150", "275", "410")
	add(models.CategoryPhotography, "photography", "600", "980")
	return cat
}

// Each category is picked with probability 3/4 so some bookings are partial.
func randomSelection(rng *rand.Rand, cat models.Catalog, i int) models.SelectionState {
	sel := models.NewSelectionState()
	sel.ClientName = demoClients[i%len(demoClients)]
	sel.Location = demoLocations[rng.Intn(len(demoLocations))]
	sel.EventDate = time.Now().AddDate(0, 0, 14+rng.Intn(180)).Format("2006-01-02")
	for _, c := range models.Categories {
		offerings := cat.Get(c)
		if len(offerings) == 0 || rng.Intn(4) == 0 {
			continue
		}
		sel.Chosen[c] = offerings[rng.Intn(len(offerings))].ID
	}
	return sel
}
