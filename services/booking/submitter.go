package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"
)

// HTTPSubmitter posts bookings to an external booking-write service.
type HTTPSubmitter struct {
	URL  string
	HTTP *http.Client
}

type receiptBody struct {
	BookingID  utils.FlexString `json:"bookingId"`
	ID         utils.FlexString `json:"id"`
	Status     string           `json:"status"`
	ReceivedAt *time.Time       `json:"receivedAt"`
}

// SubmitBooking sends the payload and decodes the receipt.
func (s *HTTPSubmitter) SubmitBooking(ctx context.Context, payload models.BookingPayload) (*models.BookingReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode booking: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read booking receipt: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &utils.HTTPStatusError{URL: s.URL, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var rb receiptBody
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &rb); err != nil {
			return nil, fmt.Errorf("decode booking receipt: %w", err)
		}
	}
	receipt := &models.BookingReceipt{
		BookingID:  string(rb.BookingID),
		Status:     rb.Status,
		ReceivedAt: time.Now().UTC(),
	}
	if receipt.BookingID == "" {
		receipt.BookingID = string(rb.ID)
	}
	if receipt.Status == "" {
		receipt.Status = "accepted"
	}
	if rb.ReceivedAt != nil {
		receipt.ReceivedAt = *rb.ReceivedAt
	}
	return receipt, nil
}

// DisabledSubmitter is used when no booking-write service is configured.
type DisabledSubmitter struct{}

func (DisabledSubmitter) SubmitBooking(context.Context, models.BookingPayload) (*models.BookingReceipt, error) {
	return nil, ErrSubmissionDisabled
}
