package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCheckoutService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

func (s *DefaultCheckoutService) nextID() string {
	if s.newID != nil {
		return s.newID()
	}
	return uuid.New().String()
}

func (s *DefaultCheckoutService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// Start loads the catalog and opens a session in the editing state. owner
// identifies the caller the session belongs to.
func (s *DefaultCheckoutService) Start(ctx context.Context, locale, owner string) (*models.CheckoutSession, error) {
	res := s.Catalog.Load(ctx)
	now := s.clock()

	session := &models.CheckoutSession{
		ID:                s.nextID(),
		Owner:             owner,
		Locale:            locale,
		State:             models.CheckoutEditing,
		Selection:         models.NewSelectionState(),
		Catalog:           res.Catalog,
		CatalogGeneration: 1,
		FailedCategories:  res.FailedCategories(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	s.logger().Info("checkout started",
		zap.String("sessionID", session.ID),
		zap.Int("failedCategories", len(session.FailedCategories)))
	return session, nil
}

// Get returns the current state of a session.
func (s *DefaultCheckoutService) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// RefreshCatalog reloads the catalog of an editing session. Each refresh takes
// a new generation; a result is only applied if no later refresh started and
// the session is still editing. Superseded results are dropped and the
// current session is returned.
func (s *DefaultCheckoutService) RefreshCatalog(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	var generation uint64
	_, err := s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutEditing {
			return &TransitionError{From: cs.State, Op: "refresh catalog of"}
		}
		cs.CatalogGeneration++
		generation = cs.CatalogGeneration
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := s.Catalog.Load(ctx)

	updated, err := s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.CatalogGeneration != generation || cs.State != models.CheckoutEditing {
			return ErrStaleCatalog
		}
		cs.Catalog = res.Catalog
		cs.FailedCategories = res.FailedCategories()
		cs.UpdatedAt = s.clock()
		return nil
	})
	if errors.Is(err, ErrStaleCatalog) {
		s.logger().Debug("discarding superseded catalog response",
			zap.String("sessionID", sessionID),
			zap.Uint64("generation", generation))
		return s.Store.Get(ctx, sessionID)
	}
	return updated, err
}

// SetFields replaces customer fields of an editing session.
func (s *DefaultCheckoutService) SetFields(ctx context.Context, sessionID string, fields map[string]string) (*models.CheckoutSession, error) {
	return s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutEditing {
			return &TransitionError{From: cs.State, Op: "edit"}
		}
		for field, value := range fields {
			if err := cs.Selection.SetField(field, value); err != nil {
				return utils.NewValidationError(field, "unknown field")
			}
		}
		cs.UpdatedAt = s.clock()
		return nil
	})
}

// SetSelection chooses or clears the offering of one category.
func (s *DefaultCheckoutService) SetSelection(ctx context.Context, sessionID string, category models.Category, offeringID string) (*models.CheckoutSession, error) {
	return s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutEditing {
			return &TransitionError{From: cs.State, Op: "edit"}
		}
		if err := cs.Selection.SetSelection(category, offeringID); err != nil {
			return utils.NewValidationError("category", err.Error())
		}
		cs.UpdatedAt = s.clock()
		return nil
	})
}

// Review validates the customer fields and builds the order summary.
func (s *DefaultCheckoutService) Review(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutEditing {
			return &TransitionError{From: cs.State, Op: "review"}
		}
		if err := validateCustomer(cs.Selection); err != nil {
			return err
		}
		summary := BuildSummary(cs.Selection, cs.Catalog)
		cs.Summary = &summary
		cs.SubmissionError = ""
		cs.State = models.CheckoutReviewing
		cs.UpdatedAt = s.clock()
		return nil
	})
}

// Back discards the summary and returns to editing.
func (s *DefaultCheckoutService) Back(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutReviewing {
			return &TransitionError{From: cs.State, Op: "go back from"}
		}
		cs.Summary = nil
		cs.State = models.CheckoutEditing
		cs.UpdatedAt = s.clock()
		return nil
	})
}

// Confirm submits the reviewed summary and moves the session to confirmed.
// Under SubmitConfirmAlways a failed submission is only recorded; under
// SubmitStrict it sends the session back to reviewing and is returned.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	logger := s.logger().With(zap.String("sessionID", sessionID))

	var summary models.OrderSummary
	_, err := s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutReviewing || cs.Summary == nil {
			return &TransitionError{From: cs.State, Op: "confirm"}
		}
		summary = *cs.Summary
		cs.State = models.CheckoutSubmitting
		cs.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	submitter := s.Submitter
	if submitter == nil {
		submitter = DisabledSubmitter{}
	}
	payload := summary.Payload()
	receipt, submitErr := submitter.SubmitBooking(ctx, payload)
	if submitErr != nil {
		logger.Error("booking submission failed",
			zap.String("policy", string(s.Policy)),
			zap.Error(submitErr))
	}

	// The session has to leave submitting even when the caller has gone away,
	// so everything after the submission ignores cancellation of ctx.
	ctx = context.WithoutCancel(ctx)

	strict := s.Policy == SubmitStrict
	delay := s.RedirectDelay
	updated, err := s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		now := s.clock()
		cs.UpdatedAt = now
		if submitErr != nil {
			cs.SubmissionError = submitErr.Error()
			if strict {
				cs.State = models.CheckoutReviewing
				return nil
			}
		} else {
			cs.SubmissionError = ""
		}
		redirectAt := now.Add(delay)
		cs.Receipt = receipt
		cs.State = models.CheckoutConfirmed
		cs.RedirectTo = HomePath
		cs.RedirectAt = &redirectAt
		return nil
	})
	if err != nil {
		logger.Error("failed to record submission outcome", zap.Error(err))
		s.revertToReviewing(ctx, sessionID, logger)
		return nil, err
	}
	if updated.State != models.CheckoutConfirmed {
		return updated, &SubmissionError{Err: submitErr}
	}

	logger.Info("checkout confirmed",
		zap.String("total", summary.Total.String()),
		zap.Int("lineItems", len(summary.LineItems)),
		zap.Bool("submitted", submitErr == nil))

	if s.Redirects != nil {
		redirectAt := *updated.RedirectAt
		s.Redirects.Schedule(sessionID, delay, func() {
			bg := context.Background()
			// Another instance may have handled a Leave for this session.
			current, err := s.Store.Get(bg, sessionID)
			if err != nil || current.State != models.CheckoutConfirmed ||
				current.RedirectAt == nil || !current.RedirectAt.Equal(redirectAt) {
				return
			}
			if err := s.Store.Delete(bg, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
				logger.Warn("failed to drop session after redirect", zap.Error(err))
				return
			}
			logger.Debug("redirected confirmed checkout home")
		})
	}

	if s.Dispatcher != nil {
		confirmation := models.ConfirmationPayload{
			SessionID: sessionID,
			Locale:    updated.Locale,
			Booking:   payload,
		}
		if receipt != nil {
			confirmation.BookingID = receipt.BookingID
		}
		if err := s.Dispatcher.DispatchConfirmation(ctx, confirmation); err != nil {
			logger.Warn("failed to queue confirmation notice", zap.Error(err))
		}
	}
	return updated, nil
}

// revertToReviewing puts a session stuck in submitting back to reviewing so
// the user can confirm again.
func (s *DefaultCheckoutService) revertToReviewing(ctx context.Context, sessionID string, logger *zap.Logger) {
	_, err := s.Store.Update(ctx, sessionID, func(cs *models.CheckoutSession) error {
		if cs.State != models.CheckoutSubmitting {
			return nil
		}
		cs.State = models.CheckoutReviewing
		cs.UpdatedAt = s.clock()
		return nil
	})
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		logger.Error("failed to revert submitting session", zap.Error(err))
	}
}

// Leave is called when the user navigates away. Any pending redirect is
// canceled and the session is dropped.
func (s *DefaultCheckoutService) Leave(ctx context.Context, sessionID string) error {
	if s.Redirects != nil {
		s.Redirects.Cancel(sessionID)
	}
	return s.Store.Delete(ctx, sessionID)
}
