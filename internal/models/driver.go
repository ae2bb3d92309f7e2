package models

import (
	"encoding/json"
	"time"
)

type Driver struct {
	DriverID                int        `json:"driverId"`
	FullName                string     `json:"fullName" validate:"required"`
	PhotoPath               string     `json:"photoPath"`
	ExperienceYears         int        `json:"experienceYears"`
	LicenseType             string     `json:"licenseType"`
	LicenseNumber           string     `json:"licenseNumber"`
	LicenseExpiry           *time.Time `json:"licenseExpiry"`
	Languages               []string   `json:"languages"`
	Rating                  float64    `json:"rating"`
	PoliceVerified          bool       `json:"policeVerified"`
	AadhaarVerified         bool       `json:"aadhaarVerified"`
	SafetyTrainingCompleted bool       `json:"safetyTrainingCompleted"`
	Description             string     `json:"description"`
}

func (d *Driver) UnmarshalJSON(data []byte) error {
	type alias Driver
	aux := &struct {
		*alias
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Experience int    `json:"experience"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if d.DriverID == 0 {
		d.DriverID = aux.ID
	}
	if d.FullName == "" {
		d.FullName = aux.Name
	}
	if d.ExperienceYears == 0 {
		d.ExperienceYears = aux.Experience
	}

	return nil
}
