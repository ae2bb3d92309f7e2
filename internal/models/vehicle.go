package models

import "encoding/json"

// Vehicle is the canonical fleet entry. The backend has grown several field
// spellings over time (capacity vs seatingCapacity, mainImageUrl vs
// imageUrl); UnmarshalJSON collapses them here so nothing downstream has to
// guess.
type Vehicle struct {
	ID           int              `json:"id"`
	Name         string           `json:"name" validate:"required"`
	Capacity     int              `json:"capacity"`
	IsAC         bool             `json:"isAC"`
	Description  string           `json:"description"`
	MainImageURL string           `json:"mainImageUrl"`
	Images       []string         `json:"images"`
	Pricing      []VehiclePricing `json:"pricing"`
	Charges      []VehicleCharge  `json:"charges"`
	Terms        []string         `json:"terms"`
}

type VehiclePricing struct {
	TripType  string  `json:"tripType"`
	RatePerKm float64 `json:"ratePerKm"`
	MinKm     int     `json:"minKm"`
}

type VehicleCharge struct {
	ChargeType string  `json:"chargeType"`
	Amount     float64 `json:"amount"`
}

func (v *Vehicle) UnmarshalJSON(data []byte) error {
	type alias Vehicle
	aux := &struct {
		*alias
		VehicleID       int    `json:"vehicleId"`
		VehicleName     string `json:"vehicleName"`
		SeatingCapacity int    `json:"seatingCapacity"`
		ImageURL        string `json:"imageUrl"`
	}{alias: (*alias)(v)}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if v.ID == 0 {
		v.ID = aux.VehicleID
	}
	if v.Name == "" {
		v.Name = aux.VehicleName
	}
	if v.Capacity == 0 {
		v.Capacity = aux.SeatingCapacity
	}
	if v.MainImageURL == "" {
		v.MainImageURL = aux.ImageURL
	}

	return nil
}
