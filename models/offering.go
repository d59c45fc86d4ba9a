package models

import "github.com/shopspring/decimal"

// ServiceOffering is a priced, named service within a category.
type ServiceOffering struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
}

// OfferingFields carries the editable fields of an offering.
type OfferingFields struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// Catalog holds one offering list per category.
type Catalog struct {
	Catering    []ServiceOffering `json:"catering"`
	Music       []ServiceOffering `json:"music"`
	Decoration  []ServiceOffering `json:"decoration"`
	Photography []ServiceOffering `json:"photography"`
}

// NewCatalog returns a catalog with every list empty but non-nil.
func NewCatalog() Catalog {
	return Catalog{
		Catering:    []ServiceOffering{},
		Music:       []ServiceOffering{},
		Decoration:  []ServiceOffering{},
		Photography: []ServiceOffering{},
	}
}

// Get returns the offerings for a category.
func (c Catalog) Get(category Category) []ServiceOffering {
	switch category {
	case CategoryCatering:
		return c.Catering
	case CategoryMusic:
		return c.Music
	case CategoryDecoration:
		return c.Decoration
	case CategoryPhotography:
		return c.Photography
	}
	return nil
}

// Set replaces the offerings for a category. A nil list is stored as empty.
func (c *Catalog) Set(category Category, offerings []ServiceOffering) {
	if offerings == nil {
		offerings = []ServiceOffering{}
	}
	switch category {
	case CategoryCatering:
		c.Catering = offerings
	case CategoryMusic:
		c.Music = offerings
	case CategoryDecoration:
		c.Decoration = offerings
	case CategoryPhotography:
		c.Photography = offerings
	}
}

// Find looks up an offering by id within a category.
func (c Catalog) Find(category Category, id string) (ServiceOffering, bool) {
	for _, o := range c.Get(category) {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOffering{}, false
}
