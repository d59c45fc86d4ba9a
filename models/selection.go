package models

import "fmt"

// Customer field names accepted by SelectionState.SetField.
const (
	FieldClientName = "clientName"
	FieldEventDate  = "eventDate"
	FieldLocation   = "location"
)

// EventDateLayout is the calendar date format used for event dates.
const EventDateLayout = "2006-01-02"

// SelectionState is the in-progress form of one booking: customer fields
// plus at most one chosen offering id per category.
type SelectionState struct {
	ClientName string              `json:"clientName"`
	EventDate  string              `json:"eventDate"`
	Location   string              `json:"location"`
	Chosen     map[Category]string `json:"chosen"`
}

// NewSelectionState returns an empty selection.
func NewSelectionState() SelectionState {
	return SelectionState{Chosen: make(map[Category]string)}
}

// SetField replaces one customer field.
func (s *SelectionState) SetField(field, value string) error {
	switch field {
	case FieldClientName:
		s.ClientName = value
	case FieldEventDate:
		s.EventDate = value
	case FieldLocation:
		s.Location = value
	default:
		return fmt.Errorf("unknown customer field %q", field)
	}
	return nil
}

// SetSelection replaces the chosen offering for a category. An empty id
// clears the selection for that category only.
func (s *SelectionState) SetSelection(category Category, offeringID string) error {
	if _, err := ParseCategory(string(category)); err != nil {
		return err
	}
	if s.Chosen == nil {
		s.Chosen = make(map[Category]string)
	}
	if offeringID == "" {
		delete(s.Chosen, category)
		return nil
	}
	s.Chosen[category] = offeringID
	return nil
}

// Selected returns the chosen offering id for a category.
func (s SelectionState) Selected(category Category) (string, bool) {
	id, ok := s.Chosen[category]
	return id, ok && id != ""
}
