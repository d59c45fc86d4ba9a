package booking

import (
	"context"
	"time"

	"weddingplanner/models"
	"weddingplanner/services/catalog"

	"go.uber.org/zap"
)

// CheckoutService drives one client booking from editing to confirmation.
type CheckoutService interface {
	Start(ctx context.Context, locale, owner string) (*models.CheckoutSession, error)
	Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	RefreshCatalog(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	SetFields(ctx context.Context, sessionID string, fields map[string]string) (*models.CheckoutSession, error)
	SetSelection(ctx context.Context, sessionID string, category models.Category, offeringID string) (*models.CheckoutSession, error)
	Review(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Back(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Leave(ctx context.Context, sessionID string) error
}

// CatalogLoader loads the four category lists.
type CatalogLoader interface {
	Load(ctx context.Context) catalog.Result
}

// Submitter hands a booking to the booking-write service.
type Submitter interface {
	SubmitBooking(ctx context.Context, payload models.BookingPayload) (*models.BookingReceipt, error)
}

// ConfirmationDispatcher queues the confirmation notice of a booking.
type ConfirmationDispatcher interface {
	DispatchConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// SubmitPolicy decides what a failed submission does to the state machine.
type SubmitPolicy string

const (
	// SubmitConfirmAlways confirms whatever the submitter answers and only
	// records the failure on the session.
	SubmitConfirmAlways SubmitPolicy = "confirm_always"
	// SubmitStrict returns the session to reviewing when submission fails.
	SubmitStrict SubmitPolicy = "strict"
)

// ParseSubmitPolicy maps a configuration value onto a policy.
func ParseSubmitPolicy(s string) SubmitPolicy {
	if SubmitPolicy(s) == SubmitStrict {
		return SubmitStrict
	}
	return SubmitConfirmAlways
}

// HomePath is where a confirmed session redirects to.
const HomePath = "/"

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Store         SessionStore
	Catalog       CatalogLoader
	Submitter     Submitter
	Dispatcher    ConfirmationDispatcher
	Redirects     Redirector
	Policy        SubmitPolicy
	RedirectDelay time.Duration
	Logger        *zap.Logger

	now   func() time.Time
	newID func() string
}
