package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"markhamtaxi/models"
)

func TestStatusCreateAndList(t *testing.T) {
	statuses := &fakeStatusRepo{}
	r := newRouter(&fakeBookingRepo{}, statuses, &fakeNotifier{})

	w := postJSON(t, r, "/api/status", map[string]string{"client_name": "uptime-probe"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var created models.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Timestamp == "" {
		t.Fatalf("expected server-generated id and timestamp, got %+v", created)
	}
	if created.ClientName != "uptime-probe" {
		t.Fatalf("unexpected client name %q", created.ClientName)
	}

	lw := get(t, r, "/api/status")
	if lw.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", lw.Code)
	}
	var listed []models.StatusCheck
	if err := json.Unmarshal(lw.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created check to be listed, got %+v", listed)
	}
}

func TestStatusCreateRequiresClientName(t *testing.T) {
	r := newRouter(&fakeBookingRepo{}, &fakeStatusRepo{}, &fakeNotifier{})

	w := postJSON(t, r, "/api/status", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStatusListEmpty(t *testing.T) {
	r := newRouter(&fakeBookingRepo{}, &fakeStatusRepo{}, &fakeNotifier{})

	w := get(t, r, "/api/status")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var listed []models.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %+v", listed)
	}
}
