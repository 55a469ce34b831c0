package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"markhamtaxi/config"
	"markhamtaxi/models"
)

func request() models.BookingRequest {
	return models.BookingRequest{
		Name:       "Jane Doe",
		Phone:      "4165551234",
		Date:       "2024-06-01",
		Time:       "14:30",
		Passengers: "2",
		Pickup:     "1 Main St",
		Dropoff:    "Pearson Airport",
	}
}

func TestFormatMessageWithoutNotes(t *testing.T) {
	body := formatMessage(request())

	want := "🚖 New Taxi Booking\n" +
		"Name: Jane Doe\n" +
		"Phone: 4165551234\n" +
		"Date: 2024-06-01 14:30\n" +
		"From: 1 Main St\n" +
		"To: Pearson Airport\n" +
		"Passengers: 2"
	if body != want {
		t.Fatalf("unexpected message body:\n%s", body)
	}
	if strings.Contains(body, "Notes:") {
		t.Fatal("Notes line must be omitted when notes is empty")
	}
}

func TestFormatMessageWithNotes(t *testing.T) {
	req := request()
	req.Notes = "two suitcases"

	body := formatMessage(req)
	if !strings.HasSuffix(body, "\nNotes: two suitcases") {
		t.Fatalf("expected trailing Notes line, got:\n%s", body)
	}
}

func TestNotifyUnconfigured(t *testing.T) {
	n := NewTwilioNotifier(config.Config{TaxiPhoneNumber: "+14165668154"})

	err := n.Notify(context.Background(), request())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNotifyPartialCredentialsStayDisabled(t *testing.T) {
	n := NewTwilioNotifier(config.Config{
		TwilioAccountSID: "AC123",
		TaxiPhoneNumber:  "+14165668154",
	})

	if err := n.Notify(context.Background(), request()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured with partial credentials, got %v", err)
	}
}
