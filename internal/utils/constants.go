package utils

// Application Constants
const (
	AppName    = "SairajTravels"
	AppVersion = "1.0.0"

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"

	// Error messages
	ErrUnauthorized   = "Authentication required"
	ErrInternalServer = "Internal server error"

	// Homepage content
	PopularPackagesLimit = 6
)
