package booking

import (
	"strings"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"
)

// validateCustomer checks the fields the booking form marks as required.
func validateCustomer(s models.SelectionState) error {
	fields := map[string]string{}
	if strings.TrimSpace(s.ClientName) == "" {
		fields[models.FieldClientName] = "required"
	}
	if strings.TrimSpace(s.EventDate) == "" {
		fields[models.FieldEventDate] = "required"
	} else if _, err := time.Parse(models.EventDateLayout, s.EventDate); err != nil {
		fields[models.FieldEventDate] = "must be a date in YYYY-MM-DD format"
	}
	if strings.TrimSpace(s.Location) == "" {
		fields[models.FieldLocation] = "required"
	}
	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}
