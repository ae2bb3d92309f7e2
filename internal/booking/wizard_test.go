package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"sairajtravels/internal/api"
	"sairajtravels/internal/config"
	"sairajtravels/internal/models"
)

func newTestWizard(t *testing.T, handler http.HandlerFunc) (*Wizard, *int64) {
	t.Helper()

	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(&config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, nil)
	return NewWizard(client), &requests
}

func fillWizard(w *Wizard) {
	w.Personal = PersonalInfo{Name: "Asha Patil", Phone: "9876543210", Email: "asha@example.com"}
	w.Trip = TripDetails{
		Pickup:     "Pune",
		Drop:       "Mahabaleshwar",
		TripDate:   "2026-09-15",
		TripTime:   "06:30",
		Passengers: 6,
	}
	w.Vehicle = VehicleSelection{VehicleID: 2, VehicleName: "Innova Crysta"}
}

func TestStepNavigationClamps(t *testing.T) {
	t.Parallel()

	w, _ := newTestWizard(t, nil)

	if w.Step() != StepPersonalInfo {
		t.Fatalf("start step = %d", w.Step())
	}

	w.Prev()
	if w.Step() != StepPersonalInfo {
		t.Error("Prev at the first step must be a no-op")
	}

	for i := 0; i < 10; i++ {
		w.Next()
	}
	if w.Step() != StepReview {
		t.Errorf("Next past the last step drifted to %d", w.Step())
	}

	w.Prev()
	if w.Step() != StepVehicleSelection {
		t.Errorf("Prev from review = %d", w.Step())
	}
}

func TestPayloadUnionsAllSteps(t *testing.T) {
	t.Parallel()

	w, _ := newTestWizard(t, nil)
	fillWizard(w)
	w.Personal.Name = "  Asha Patil  "
	w.Trip.Pickup = " Pune "

	p := w.Payload()
	if p.CustomerName != "Asha Patil" || p.PickupLocation != "Pune" {
		t.Errorf("payload text fields not trimmed: %+v", p)
	}
	if p.VehicleID != 2 || p.DropLocation != "Mahabaleshwar" || p.TripDate != "2026-09-15" || p.Passengers != 6 {
		t.Errorf("payload missing step data: %+v", p)
	}
}

func TestSubmitShortCircuitsOnMissingLocations(t *testing.T) {
	t.Parallel()

	w, requests := newTestWizard(t, nil)
	fillWizard(w)
	w.Trip.Pickup = ""
	w.Trip.Drop = "   "

	err := w.Submit(context.Background())
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "pickup location") || !strings.Contains(err.Error(), "drop location") {
		t.Errorf("message %q should name the missing fields", err.Error())
	}
	if n := atomic.LoadInt64(requests); n != 0 {
		t.Errorf("incomplete submit made %d network calls, want 0", n)
	}
	if w.Confirmed() {
		t.Error("incomplete submit must not confirm")
	}
}

func TestSubmitRequiresVehicle(t *testing.T) {
	t.Parallel()

	w, requests := newTestWizard(t, nil)
	fillWizard(w)
	w.Vehicle = VehicleSelection{}

	err := w.Submit(context.Background())
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "vehicle") {
		t.Errorf("message %q should mention the vehicle", err.Error())
	}
	if n := atomic.LoadInt64(requests); n != 0 {
		t.Errorf("made %d network calls, want 0", n)
	}
}

func TestSubmitPostsBookingAndResets(t *testing.T) {
	t.Parallel()

	var got models.Booking
	w, requests := newTestWizard(t, func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/vehicle-bookings" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		rw.Write([]byte(`{"id": 42, "status": "PENDING"}`))
	})
	fillWizard(w)
	w.Next()
	w.Next()
	w.Next()

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if n := atomic.LoadInt64(requests); n != 1 {
		t.Errorf("made %d requests, want 1", n)
	}
	if got.CustomerName != "Asha Patil" || got.VehicleID != 2 {
		t.Errorf("posted payload: %+v", got)
	}

	if !w.Confirmed() {
		t.Error("successful submit must confirm")
	}
	if w.Step() != StepPersonalInfo {
		t.Errorf("step after success = %d, want reset to 1", w.Step())
	}
	if w.Personal.Name != "" || w.Trip.Pickup != "" || w.Vehicle.VehicleID != 0 {
		t.Error("drafts must clear on success")
	}
}

func TestFailedSubmitPreservesEverything(t *testing.T) {
	t.Parallel()

	w, _ := newTestWizard(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
		rw.Write([]byte(`{"message": "Bookings are temporarily closed"}`))
	})
	fillWizard(w)
	w.Next()
	w.Next()
	w.Next()

	err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("expected submit to fail")
	}
	if errors.Is(err, ErrIncomplete) {
		t.Fatal("backend rejection must not classify as incomplete")
	}
	if got := api.UserMessage(err); got != "Bookings are temporarily closed" {
		t.Errorf("UserMessage = %q", got)
	}

	if w.Confirmed() {
		t.Error("failed submit must not confirm")
	}
	if w.Step() != StepReview {
		t.Errorf("step after failure = %d, want to stay on review", w.Step())
	}
	if w.Personal.Name != "Asha Patil" || w.Trip.Pickup != "Pune" {
		t.Error("failed submit must keep every entered field")
	}
}

func TestStartOverClearsConfirmation(t *testing.T) {
	t.Parallel()

	w, _ := newTestWizard(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.Write([]byte(`{"id": 1}`))
	})
	fillWizard(w)
	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	w.StartOver()
	if w.Confirmed() {
		t.Error("StartOver must clear the confirmation view")
	}
	if w.Step() != StepPersonalInfo {
		t.Errorf("step = %d", w.Step())
	}
}
