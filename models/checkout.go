package models

import "time"

// CheckoutState is a position in the review/confirm state machine.
type CheckoutState string

const (
	CheckoutEditing    CheckoutState = "editing"
	CheckoutReviewing  CheckoutState = "reviewing"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutConfirmed  CheckoutState = "confirmed"
)

// CheckoutSession is the server-side state of one client booking screen.
type CheckoutSession struct {
	ID     string        `json:"id"`
	Owner  string        `json:"owner,omitempty"`
	Locale string        `json:"locale"`
	State  CheckoutState `json:"state"`

	Selection         SelectionState `json:"selection"`
	Catalog           Catalog        `json:"catalog"`
	CatalogGeneration uint64         `json:"catalogGeneration"`
	FailedCategories  []Category     `json:"failedCategories,omitempty"`

	Summary         *OrderSummary   `json:"summary,omitempty"`
	Receipt         *BookingReceipt `json:"receipt,omitempty"`
	SubmissionError string          `json:"submissionError,omitempty"`

	RedirectTo string     `json:"redirectTo,omitempty"`
	RedirectAt *time.Time `json:"redirectAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
