package reports

import (
	"context"
	"time"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"

	"golang.org/x/sync/errgroup"
)

// MonthsBack is how far the monthly booking chart reaches, current month
// included.
const MonthsBack = 6

type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Bar is one row of a percentage-bar chart. Percent is 0-100 of the largest
// row, so the widest bar always spans the full track.
type Bar struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type Summary struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`

	TotalEnquiries    int `json:"totalEnquiries"`
	PendingEnquiries  int `json:"pendingEnquiries"`
	ResolvedEnquiries int `json:"resolvedEnquiries"`

	TotalVehicles      int `json:"totalVehicles"`
	TotalPackages      int `json:"totalPackages"`
	ActivePackages     int `json:"activePackages"`
	TotalTestimonials  int `json:"totalTestimonials"`
	ActiveTestimonials int `json:"activeTestimonials"`

	MonthlyBookings []MonthBucket `json:"monthlyBookings"`
	BookingBars     []Bar         `json:"bookingBars"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// Aggregator builds the admin reports view. The five source collections are
// fetched concurrently and aggregated synchronously once all have resolved;
// one failed fetch fails the whole report.
type Aggregator struct {
	client *api.Client
}

func NewAggregator(client *api.Client) *Aggregator {
	return &Aggregator{client: client}
}

func (a *Aggregator) Build(ctx context.Context) (*Summary, error) {
	var (
		bookings     []models.Booking
		enquiries    []models.Enquiry
		vehicles     []models.Vehicle
		packages     []models.TourPackage
		testimonials []models.Testimonial
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.client.Get(ctx, "/api/vehicle-bookings", &bookings) })
	g.Go(func() error { return a.client.Get(ctx, "/api/enquiries", &enquiries) })
	g.Go(func() error { return a.client.Get(ctx, "/api/vehicles", &vehicles) })
	g.Go(func() error { return a.client.Get(ctx, "/api/packages", &packages) })
	g.Go(func() error { return a.client.Get(ctx, "/api/testimonials", &testimonials) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(bookings, enquiries, vehicles, packages, testimonials, time.Now()), nil
}

// Aggregate derives the summary from already-fetched collections. Pure so
// the math stays testable without a backend.
func Aggregate(bookings []models.Booking, enquiries []models.Enquiry, vehicles []models.Vehicle, packages []models.TourPackage, testimonials []models.Testimonial, now time.Time) *Summary {
	s := &Summary{
		TotalBookings:     len(bookings),
		TotalEnquiries:    len(enquiries),
		TotalVehicles:     len(vehicles),
		TotalPackages:     len(packages),
		TotalTestimonials: len(testimonials),
		GeneratedAt:       now,
	}

	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			s.PendingBookings++
		case models.BookingStatusConfirmed:
			s.ConfirmedBookings++
			s.TotalRevenue += b.TotalAmount
		case models.BookingStatusCancelled:
			s.CancelledBookings++
		}
	}

	for _, e := range enquiries {
		switch e.Status {
		case models.EnquiryStatusPending:
			s.PendingEnquiries++
		case models.EnquiryStatusResolved:
			s.ResolvedEnquiries++
		}
	}

	for _, p := range packages {
		if p.IsActive {
			s.ActivePackages++
		}
	}

	for _, t := range testimonials {
		if t.IsActive {
			s.ActiveTestimonials++
		}
	}

	s.MonthlyBookings = bucketByMonth(bookings, now)
	s.BookingBars = percentageBars([]Bar{
		{Label: "Pending", Count: s.PendingBookings},
		{Label: "Confirmed", Count: s.ConfirmedBookings},
		{Label: "Cancelled", Count: s.CancelledBookings},
	})

	return s
}

// bucketByMonth counts bookings per calendar month over the last MonthsBack
// months, oldest first. Bookings without a timestamp are skipped.
func bucketByMonth(bookings []models.Booking, now time.Time) []MonthBucket {
	counts := make(map[string]int)
	for _, b := range bookings {
		if b.RequestedAt == nil {
			continue
		}
		counts[b.RequestedAt.Format("Jan 2006")]++
	}

	// Truncate to the first of the current month before stepping back:
	// AddDate on a month-end date normalizes past short months and would
	// shift the whole window forward.
	buckets := make([]MonthBucket, 0, MonthsBack)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(MonthsBack - 1), 0)
	for i := 0; i < MonthsBack; i++ {
		month := anchor.AddDate(0, i, 0).Format("Jan 2006")
		buckets = append(buckets, MonthBucket{Month: month, Count: counts[month]})
	}
	return buckets
}

func percentageBars(bars []Bar) []Bar {
	max := 0
	for _, b := range bars {
		if b.Count > max {
			max = b.Count
		}
	}
	if max == 0 {
		return bars
	}
	for i := range bars {
		bars[i].Percent = bars[i].Count * 100 / max
	}
	return bars
}
