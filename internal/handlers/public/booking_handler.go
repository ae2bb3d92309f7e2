package public

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"sairajtravels/internal/api"
	"sairajtravels/internal/booking"
	"sairajtravels/internal/content"
	"sairajtravels/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	wizardCookie = "bookingSession"

	// wizardTTL bounds how long an abandoned draft is kept. Matches the
	// cookie lifetime, so an expired cookie never resolves to a live
	// entry anyway.
	wizardTTL = time.Hour
)

// wizardEntry pairs a wizard with its own lock, so two posts on the same
// session serialize without one session's submit blocking every other.
type wizardEntry struct {
	mu       sync.Mutex
	wizard   *booking.Wizard
	lastSeen time.Time
}

// WizardStore keeps in-flight booking wizards keyed by a session cookie, so
// drafts survive the round trips between steps. Stale entries are reaped on
// access; a completed flow is dropped on restart.
type WizardStore struct {
	mu      sync.Mutex
	client  *api.Client
	entries map[string]*wizardEntry
}

func NewWizardStore(client *api.Client) *WizardStore {
	return &WizardStore{
		client:  client,
		entries: make(map[string]*wizardEntry),
	}
}

func (s *WizardStore) entry(c *gin.Context) *wizardEntry {
	id, err := c.Cookie(wizardCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(wizardCookie, id, int(wizardTTL.Seconds()), "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictStaleLocked(time.Now())

	e, ok := s.entries[id]
	if !ok {
		e = &wizardEntry{wizard: booking.NewWizard(s.client)}
		s.entries[id] = e
	}
	e.lastSeen = time.Now()
	return e
}

// discard drops the caller's entry, if any.
func (s *WizardStore) discard(c *gin.Context) {
	id, err := c.Cookie(wizardCookie)
	if err != nil || id == "" {
		return
	}
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *WizardStore) evictStaleLocked(now time.Time) {
	cutoff := now.Add(-wizardTTL)
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

// size reports the number of live entries.
func (s *WizardStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// BookingPage renders the current wizard step, or the confirmation view
// right after a successful submit.
func (h *Handler) BookingPage(store *WizardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		e := store.entry(c)

		e.mu.Lock()
		w := e.wizard
		step := w.Step()
		data := gin.H{
			"Step":      step,
			"Confirmed": w.Confirmed(),
			"Personal":  w.Personal,
			"Trip":      w.Trip,
			"Vehicle":   w.Vehicle,
			"Payload":   w.Payload(),
			"Error":     c.Query("error"),
		}
		e.mu.Unlock()

		var vehicles []models.Vehicle
		if step == booking.StepVehicleSelection {
			if err := h.client.Get(c.Request.Context(), "/api/vehicles", &vehicles); err != nil {
				vehicles = content.DefaultVehicles()
			}
		}
		data["Vehicles"] = vehicles

		c.HTML(http.StatusOK, "booking.tmpl", data)
	}
}

// BookingNext saves the current step's fields and advances.
func (h *Handler) BookingNext(store *WizardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		e := store.entry(c)
		e.mu.Lock()
		bindStep(c, e.wizard)
		e.wizard.Next()
		e.mu.Unlock()
		c.Redirect(http.StatusFound, "/booking")
	}
}

// BookingPrev saves the current step's fields and goes back.
func (h *Handler) BookingPrev(store *WizardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		e := store.entry(c)
		e.mu.Lock()
		bindStep(c, e.wizard)
		e.wizard.Prev()
		e.mu.Unlock()
		c.Redirect(http.StatusFound, "/booking")
	}
}

// BookingSubmit posts the aggregated payload. On any failure the wizard
// stays on the review step with every entered field intact. The entry is
// kept on success so the confirmation view can render; restart drops it.
func (h *Handler) BookingSubmit(store *WizardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		e := store.entry(c)
		e.mu.Lock()
		err := e.wizard.Submit(c.Request.Context())
		e.mu.Unlock()

		if err != nil {
			h.notifier.ShowError(submitMessage(err))
			c.Redirect(http.StatusFound, "/booking?error="+urlEscape(submitMessage(err)))
			return
		}

		h.notifier.ShowSuccess("Booking request sent")
		c.Redirect(http.StatusFound, "/booking")
	}
}

// BookingRestart drops the finished flow; the next visit starts fresh.
func (h *Handler) BookingRestart(store *WizardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.discard(c)
		c.Redirect(http.StatusFound, "/booking")
	}
}

func bindStep(c *gin.Context, w *booking.Wizard) {
	switch w.Step() {
	case booking.StepPersonalInfo:
		w.Personal.Name = c.PostForm("name")
		w.Personal.Phone = c.PostForm("phone")
		w.Personal.Email = c.PostForm("email")
	case booking.StepTripDetails:
		w.Trip.Pickup = c.PostForm("pickup")
		w.Trip.Drop = c.PostForm("drop")
		w.Trip.TripDate = c.PostForm("tripDate")
		w.Trip.ReturnDate = c.PostForm("returnDate")
		w.Trip.TripTime = c.PostForm("tripTime")
		w.Trip.Passengers, _ = strconv.Atoi(c.PostForm("passengers"))
	case booking.StepVehicleSelection:
		w.Vehicle.VehicleID, _ = strconv.Atoi(c.PostForm("vehicleId"))
		w.Vehicle.VehicleName = c.PostForm("vehicleName")
	}
}

func submitMessage(err error) string {
	if errors.Is(err, booking.ErrIncomplete) {
		return err.Error()
	}
	return api.UserMessage(err)
}

func urlEscape(s string) string {
	return url.QueryEscape(s)
}
