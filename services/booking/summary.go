package booking

import (
	"weddingplanner/models"

	"github.com/shopspring/decimal"
)

// BuildSummary resolves a selection against a catalog. Categories are visited
// in fixed order; ids missing from the catalog are skipped without error.
// BuildSummary performs no I/O and returns the same summary for the same input.
func BuildSummary(selection models.SelectionState, cat models.Catalog) models.OrderSummary {
	summary := models.OrderSummary{
		Customer: models.Customer{
			Name:     selection.ClientName,
			Date:     selection.EventDate,
			Location: selection.Location,
		},
		LineItems: []models.OrderLineItem{},
		Total:     decimal.Zero,
	}

	for _, category := range models.Categories {
		id, ok := selection.Selected(category)
		if !ok {
			continue
		}
		offering, found := cat.Find(category, id)
		if !found {
			continue
		}
		summary.LineItems = append(summary.LineItems, models.OrderLineItem{
			OfferingID: offering.ID,
			Name:       offering.Name,
			Price:      offering.Price,
			Category:   category,
		})
		summary.Total = summary.Total.Add(offering.Price)
	}
	return summary
}
