package notification

import (
	"context"
	"fmt"

	"markhamtaxi/config"
	"markhamtaxi/models"
	"markhamtaxi/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// TwilioNotifier sends booking summaries as SMS via Twilio. When
// credentials are missing the notifier stays in a disabled state and
// Notify reports ErrNotConfigured instead of attempting delivery.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

// NewTwilioNotifier builds a notifier from the loaded configuration.
// The client is created once at startup and shared across requests.
func NewTwilioNotifier(cfg config.Config) *TwilioNotifier {
	n := &TwilioNotifier{
		from: cfg.TwilioPhoneNumber,
		to:   cfg.TaxiPhoneNumber,
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioPhoneNumber == "" {
		return n
	}
	n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return n
}

// Notify sends one SMS to the dispatch line. Errors are returned for the
// caller to record as sms_sent=false; they never abort a booking.
func (n *TwilioNotifier) Notify(ctx context.Context, req models.BookingRequest) error {
	logger := utils.GetLogger()

	if n.client == nil {
		logger.Warn("Twilio not configured; SMS skipped")
		return ErrNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(formatMessage(req))
	params.SetFrom(n.from)
	params.SetTo(n.to)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		logger.Error("SMS send failed", zap.Error(err))
		return fmt.Errorf("send sms: %w", err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	logger.Info("SMS sent", zap.String("sid", sid))
	return nil
}

// formatMessage builds the fixed-format dispatch summary. The Notes line
// is appended only when notes is non-empty.
func formatMessage(req models.BookingRequest) string {
	body := fmt.Sprintf(`🚖 New Taxi Booking
Name: %s
Phone: %s
Date: %s %s
From: %s
To: %s
Passengers: %s`,
		req.Name, req.Phone, req.Date, req.Time, req.Pickup, req.Dropoff, req.Passengers)

	if req.Notes != "" {
		body += fmt.Sprintf("\nNotes: %s", req.Notes)
	}
	return body
}
