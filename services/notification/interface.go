package notification

import (
	"context"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.uber.org/zap"
)

// Notifier tells the customer their booking went through.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, p models.ConfirmationPayload) error
}

// Message is a rendered confirmation notice.
type Message struct {
	Title string
	Body  string
}

// Render localizes the confirmation notice for p.
func Render(p models.ConfirmationPayload) Message {
	return Message{
		Title: utils.Message(p.Locale, utils.MsgBookingConfirmed),
		Body:  utils.Message(p.Locale, utils.MsgConfirmationBody),
	}
}

// LogNotifier writes notices to the structured log. It is the notifier used
// until a mail relay is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) NotifyBookingConfirmed(_ context.Context, p models.ConfirmationPayload) error {
	logger := n.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	msg := Render(p)
	logger.Info(msg.Title,
		zap.String("sessionID", p.SessionID),
		zap.String("bookingID", p.BookingID),
		zap.String("customer", p.Booking.Customer.Name),
		zap.String("eventDate", p.Booking.Customer.Date),
		zap.String("total", p.Booking.Total.String()),
		zap.String("body", msg.Body))
	return nil
}
