package models

// ConfirmationPayload is queued once a booking reaches the confirmed state.
type ConfirmationPayload struct {
	SessionID string         `json:"sessionId"`
	Locale    string         `json:"locale"`
	BookingID string         `json:"bookingId,omitempty"`
	Booking   BookingPayload `json:"booking"`
}
