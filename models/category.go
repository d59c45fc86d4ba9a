package models

import "fmt"

// Category is one of the fixed partitions of services a wedding can book.
type Category string

const (
	CategoryCatering    Category = "catering"
	CategoryMusic       Category = "music"
	CategoryDecoration  Category = "decoration"
	CategoryPhotography Category = "photography"
)

// Categories lists every category in summary order.
var Categories = []Category{
	CategoryCatering,
	CategoryMusic,
	CategoryDecoration,
	CategoryPhotography,
}

// ParseCategory validates a raw category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown service category %q", s)
}

func (c Category) String() string {
	return string(c)
}
