package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a vehicle booking request. Status transitions are owned by the
// backend; this tier only displays the current value or sets a new one
// through an admin action.
type Booking struct {
	ID             int           `json:"id"`
	VehicleID      int           `json:"vehicleId" validate:"required"`
	CustomerName   string        `json:"customerName" validate:"required"`
	CustomerPhone  string        `json:"customerPhone" validate:"required"`
	CustomerEmail  string        `json:"customerEmail"`
	PickupLocation string        `json:"pickupLocation" validate:"required"`
	DropLocation   string        `json:"dropLocation" validate:"required"`
	TripDate       string        `json:"tripDate" validate:"required"`
	ReturnDate     string        `json:"returnDate"`
	TripTime       string        `json:"tripTime"`
	Passengers     int           `json:"passengers"`
	Status         BookingStatus `json:"status"`
	TotalAmount    float64       `json:"totalAmount"`
	RequestedAt    *time.Time    `json:"requestedAt"`
}
