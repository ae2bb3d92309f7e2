package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sairajtravels/internal/api"
	"sairajtravels/internal/config"
	"sairajtravels/internal/models"
)

func ts(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregateCounts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{Status: models.BookingStatusPending, RequestedAt: ts(2026, time.August, 1)},
		{Status: models.BookingStatusConfirmed, TotalAmount: 8000, RequestedAt: ts(2026, time.August, 2)},
		{Status: models.BookingStatusConfirmed, TotalAmount: 4500, RequestedAt: ts(2026, time.July, 20)},
		{Status: models.BookingStatusCancelled, TotalAmount: 9999, RequestedAt: ts(2026, time.June, 5)},
	}
	enquiries := []models.Enquiry{
		{Status: models.EnquiryStatusPending},
		{Status: models.EnquiryStatusResolved},
		{Status: models.EnquiryStatusResolved},
	}
	vehicles := make([]models.Vehicle, 5)
	packages := []models.TourPackage{
		{IsActive: true},
		{IsActive: false},
	}
	testimonials := []models.Testimonial{
		{IsActive: true},
		{IsActive: true},
		{IsActive: false},
	}

	s := Aggregate(bookings, enquiries, vehicles, packages, testimonials, now)

	if s.TotalBookings != 4 || s.PendingBookings != 1 || s.ConfirmedBookings != 2 || s.CancelledBookings != 1 {
		t.Errorf("booking counts: %+v", s)
	}
	if s.TotalRevenue != 12500 {
		t.Errorf("revenue = %v, want 12500 (confirmed only)", s.TotalRevenue)
	}
	if s.PendingEnquiries != 1 || s.ResolvedEnquiries != 2 {
		t.Errorf("enquiry counts: %+v", s)
	}
	if s.TotalVehicles != 5 || s.ActivePackages != 1 || s.ActiveTestimonials != 2 {
		t.Errorf("catalogue counts: %+v", s)
	}
}

func TestMonthlyBucketsCoverTrailingWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{RequestedAt: ts(2026, time.August, 1)},
		{RequestedAt: ts(2026, time.August, 15)},
		{RequestedAt: ts(2026, time.June, 5)},
		{RequestedAt: ts(2025, time.December, 25)}, // outside the window
		{RequestedAt: nil},                         // undated, skipped
	}

	s := Aggregate(bookings, nil, nil, nil, nil, now)

	if len(s.MonthlyBookings) != MonthsBack {
		t.Fatalf("%d buckets, want %d", len(s.MonthlyBookings), MonthsBack)
	}
	if first := s.MonthlyBookings[0]; first.Month != "Mar 2026" {
		t.Errorf("first bucket = %q, want oldest month first", first.Month)
	}
	if last := s.MonthlyBookings[MonthsBack-1]; last.Month != "Aug 2026" || last.Count != 2 {
		t.Errorf("last bucket = %+v", last)
	}

	byMonth := map[string]int{}
	for _, b := range s.MonthlyBookings {
		byMonth[b.Month] = b.Count
	}
	if byMonth["Jun 2026"] != 1 {
		t.Errorf("Jun 2026 count = %d", byMonth["Jun 2026"])
	}
	if byMonth["Jul 2026"] != 0 {
		t.Errorf("empty month must still appear with zero count")
	}
}

func TestMonthlyBucketsStableAtMonthEnd(t *testing.T) {
	t.Parallel()

	// July 31 minus five months lands on a nonexistent Feb 31 if the day
	// is carried along; the window must still start at Feb 1.
	now := time.Date(2026, time.July, 31, 23, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{RequestedAt: ts(2026, time.February, 14)},
		{RequestedAt: ts(2026, time.July, 31)},
	}

	s := Aggregate(bookings, nil, nil, nil, nil, now)

	if first := s.MonthlyBookings[0]; first.Month != "Feb 2026" || first.Count != 1 {
		t.Errorf("first bucket = %+v, want Feb 2026 with 1 booking", first)
	}
	if last := s.MonthlyBookings[MonthsBack-1]; last.Month != "Jul 2026" || last.Count != 1 {
		t.Errorf("last bucket = %+v, want Jul 2026 with 1 booking", last)
	}
	for _, b := range s.MonthlyBookings {
		if b.Month == "Aug 2026" {
			t.Error("window includes a month that has not begun")
		}
	}
}

func TestBarsScaleToLargestRow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{Status: models.BookingStatusPending},
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusConfirmed},
	}

	s := Aggregate(bookings, nil, nil, nil, nil, now)

	bars := map[string]Bar{}
	for _, b := range s.BookingBars {
		bars[b.Label] = b
	}
	if bars["Confirmed"].Percent != 100 {
		t.Errorf("largest bar percent = %d, want 100", bars["Confirmed"].Percent)
	}
	if bars["Pending"].Percent != 25 {
		t.Errorf("pending percent = %d, want 25", bars["Pending"].Percent)
	}
	if bars["Cancelled"].Percent != 0 {
		t.Errorf("cancelled percent = %d", bars["Cancelled"].Percent)
	}
}

func TestBuildFetchesAllCollections(t *testing.T) {
	t.Parallel()

	payloads := map[string]string{
		"/api/vehicle-bookings": `[{"status": "CONFIRMED", "totalAmount": 7000}]`,
		"/api/enquiries":        `[{"status": "PENDING"}, {"status": "RESOLVED"}]`,
		"/api/vehicles":         `[{"id": 1}, {"id": 2}]`,
		"/api/packages":         `[{"packageId": 1, "isActive": true}]`,
		"/api/testimonials":     `[]`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := payloads[r.URL.Path]
		if !ok {
			t.Errorf("unexpected fetch %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := api.NewClient(&config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, nil)
	summary, err := NewAggregator(client).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if summary.TotalBookings != 1 || summary.TotalRevenue != 7000 {
		t.Errorf("bookings: %+v", summary)
	}
	if summary.TotalEnquiries != 2 || summary.TotalVehicles != 2 || summary.ActivePackages != 1 {
		t.Errorf("collections: %+v", summary)
	}
}

func TestBuildFailsWhenAnyFetchFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/enquiries" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Enquiries unavailable"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.NewClient(&config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, nil)
	if _, err := NewAggregator(client).Build(context.Background()); err == nil {
		t.Fatal("expected Build to fail when one collection fails")
	}
}
