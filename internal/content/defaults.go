// Package content holds the static demonstration data the public pages fall
// back to when the backend is unreachable, so the marketing site stays
// navigable through an outage. Admin pages never use it: showing fabricated
// data there would be misleading.
package content

import "sairajtravels/internal/models"

func DefaultVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:           1,
			Name:         "Urbania",
			Capacity:     17,
			IsAC:         true,
			Description:  "Force Urbania luxury van, the favourite for group outings and corporate trips.",
			MainImageURL: "/images/vehicles/urbania.jpg",
			Pricing: []models.VehiclePricing{
				{TripType: "Local", RatePerKm: 35, MinKm: 80},
				{TripType: "Outstation", RatePerKm: 32, MinKm: 300},
			},
		},
		{
			ID:           2,
			Name:         "Innova Crysta",
			Capacity:     7,
			IsAC:         true,
			Description:  "Toyota Innova Crysta, comfortable and reliable for family tours.",
			MainImageURL: "/images/vehicles/innova-crysta.jpg",
			Pricing: []models.VehiclePricing{
				{TripType: "Local", RatePerKm: 19, MinKm: 80},
				{TripType: "Outstation", RatePerKm: 17, MinKm: 300},
			},
		},
		{
			ID:           3,
			Name:         "Mercedes-Benz Bus",
			Capacity:     35,
			IsAC:         true,
			Description:  "Mercedes-Benz luxury coach for large groups and long-distance travel.",
			MainImageURL: "/images/vehicles/mercedes-bus.jpg",
			Pricing: []models.VehiclePricing{
				{TripType: "Outstation", RatePerKm: 85, MinKm: 300},
			},
		},
		{
			ID:           4,
			Name:         "Ertiga",
			Capacity:     7,
			IsAC:         true,
			Description:  "Maruti Suzuki Ertiga, an economical choice for small families.",
			MainImageURL: "/images/vehicles/ertiga.jpg",
			Pricing: []models.VehiclePricing{
				{TripType: "Local", RatePerKm: 15, MinKm: 80},
				{TripType: "Outstation", RatePerKm: 13, MinKm: 300},
			},
		},
		{
			ID:           5,
			Name:         "Kia Carnival",
			Capacity:     7,
			IsAC:         true,
			Description:  "Kia Carnival premium MPV with captain seats for VIP travel.",
			MainImageURL: "/images/vehicles/kia-carnival.jpg",
			Pricing: []models.VehiclePricing{
				{TripType: "Local", RatePerKm: 28, MinKm: 80},
				{TripType: "Outstation", RatePerKm: 25, MinKm: 300},
			},
		},
	}
}

func DefaultDrivers() []models.Driver {
	return []models.Driver{
		{
			DriverID:                1,
			FullName:                "Sairaj Pawar",
			ExperienceYears:         15,
			LicenseType:             "Commercial",
			Languages:               []string{"Marathi", "Hindi", "English"},
			Rating:                  4.9,
			PoliceVerified:          true,
			AadhaarVerified:         true,
			SafetyTrainingCompleted: true,
			Description:             "Founder and senior driver, specialist in hill-station routes.",
		},
		{
			DriverID:                2,
			FullName:                "Mahesh Kadam",
			ExperienceYears:         10,
			LicenseType:             "Commercial",
			Languages:               []string{"Marathi", "Hindi"},
			Rating:                  4.8,
			PoliceVerified:          true,
			AadhaarVerified:         true,
			SafetyTrainingCompleted: true,
			Description:             "Long-distance specialist with an accident-free record.",
		},
	}
}

func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:              1,
			CustomerName:    "Rahul Deshmukh",
			CustomerType:    "Family Trip",
			TestimonialText: "Clean vehicle, courteous driver and on-time pickup. Our Mahabaleshwar trip was perfect.",
			Rating:          5,
			AvatarLetter:    "R",
			IsActive:        true,
		},
		{
			ID:              2,
			CustomerName:    "Sneha Kulkarni",
			CustomerType:    "Corporate Outing",
			TestimonialText: "Booked the Urbania for our office outing. Smooth ride and very professional service.",
			Rating:          5,
			AvatarLetter:    "S",
			IsActive:        true,
		},
		{
			ID:              3,
			CustomerName:    "Amit Joshi",
			CustomerType:    "Pilgrimage",
			TestimonialText: "Comfortable journey to Shirdi with a very helpful driver. Highly recommended.",
			Rating:          4,
			AvatarLetter:    "A",
			IsActive:        true,
		},
	}
}

func DefaultPackages() []models.TourPackage {
	return []models.TourPackage{
		{
			PackageID:          1,
			PackageName:        "Mahabaleshwar Weekend",
			PackageDescription: "Two days in the hills with sightseeing and strawberry farms.",
			PackagePrice:       8999,
			IsActive:           true,
			IsFeatured:         true,
		},
		{
			PackageID:          2,
			PackageName:        "Shirdi Darshan",
			PackageDescription: "Same-day darshan trip with comfortable travel.",
			PackagePrice:       5499,
			IsActive:           true,
			IsFeatured:         true,
		},
		{
			PackageID:          3,
			PackageName:        "Konkan Coastal Tour",
			PackageDescription: "Three days along the Konkan coast, beaches and forts.",
			PackagePrice:       12999,
			IsActive:           true,
		},
	}
}

func DefaultContact() models.ContactInfo {
	return models.ContactInfo{
		Phone:    "+91 98220 00000",
		Email:    "bookings@sairajtravels.in",
		WhatsApp: "+91 98220 00000",
		Address:  "Sairaj Travels, Pune, Maharashtra",
	}
}
