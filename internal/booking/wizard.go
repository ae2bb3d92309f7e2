package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
)

// Wizard steps, linear with no branching or skips.
const (
	StepPersonalInfo     = 1
	StepTripDetails      = 2
	StepVehicleSelection = 3
	StepReview           = 4
)

// ErrIncomplete marks a submit blocked client-side; no HTTP call was made.
var ErrIncomplete = errors.New("booking details incomplete")

type PersonalInfo struct {
	Name  string
	Phone string
	Email string
}

type TripDetails struct {
	Pickup     string
	Drop       string
	TripDate   string
	ReturnDate string
	TripTime   string
	Passengers int
}

type VehicleSelection struct {
	VehicleID   int
	VehicleName string
}

// Wizard is the four-step booking flow. Drafts accumulate across steps and
// survive a failed submit untouched; only a successful submit resets them.
type Wizard struct {
	client *api.Client

	step      int
	confirmed bool

	Personal PersonalInfo
	Trip     TripDetails
	Vehicle  VehicleSelection
}

func NewWizard(client *api.Client) *Wizard {
	return &Wizard{
		client: client,
		step:   StepPersonalInfo,
	}
}

func (w *Wizard) Step() int { return w.step }

// Next advances one step. At the last step it is a no-op.
func (w *Wizard) Next() {
	if w.step < StepReview {
		w.step++
	}
}

// Prev goes back one step. At the first step it is a no-op.
func (w *Wizard) Prev() {
	if w.step > StepPersonalInfo {
		w.step--
	}
}

// Confirmed reports whether the last submit succeeded.
func (w *Wizard) Confirmed() bool { return w.confirmed }

// Payload aggregates the drafts of steps 1-3 into one booking request.
func (w *Wizard) Payload() models.Booking {
	return models.Booking{
		VehicleID:      w.Vehicle.VehicleID,
		CustomerName:   strings.TrimSpace(w.Personal.Name),
		CustomerPhone:  strings.TrimSpace(w.Personal.Phone),
		CustomerEmail:  strings.TrimSpace(w.Personal.Email),
		PickupLocation: strings.TrimSpace(w.Trip.Pickup),
		DropLocation:   strings.TrimSpace(w.Trip.Drop),
		TripDate:       w.Trip.TripDate,
		ReturnDate:     w.Trip.ReturnDate,
		TripTime:       w.Trip.TripTime,
		Passengers:     w.Trip.Passengers,
	}
}

// Submit posts the aggregated booking. Missing required fields short-circuit
// with ErrIncomplete before any network traffic. On success the wizard
// resets to step 1 and flips to the confirmation view; on failure it stays
// on the review step with every entered field intact.
func (w *Wizard) Submit(ctx context.Context) error {
	payload := w.Payload()

	if missing := missingFields(payload); len(missing) > 0 {
		return fmt.Errorf("%w: please fill in %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	if err := w.client.Post(ctx, "/api/vehicle-bookings", payload, nil); err != nil {
		return err
	}

	w.reset()
	w.confirmed = true
	return nil
}

// StartOver clears the confirmation view and begins a fresh booking.
func (w *Wizard) StartOver() {
	w.reset()
}

func (w *Wizard) reset() {
	w.step = StepPersonalInfo
	w.confirmed = false
	w.Personal = PersonalInfo{}
	w.Trip = TripDetails{}
	w.Vehicle = VehicleSelection{}
}

func missingFields(b models.Booking) []string {
	var missing []string
	if b.CustomerName == "" {
		missing = append(missing, "name")
	}
	if b.CustomerPhone == "" {
		missing = append(missing, "phone")
	}
	if b.PickupLocation == "" {
		missing = append(missing, "pickup location")
	}
	if b.DropLocation == "" {
		missing = append(missing, "drop location")
	}
	if b.TripDate == "" {
		missing = append(missing, "trip date")
	}
	if b.VehicleID == 0 {
		missing = append(missing, "vehicle")
	}
	return missing
}
