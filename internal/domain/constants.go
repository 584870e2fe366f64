package domain

// Business validation constants
const (
	MinServiceDurationMinutes = 10
	MaxServiceDurationMinutes = 300
	MinServicePrice           = 0
	MaxServicePrice           = 100000
	MaxTrainerFullNameLength  = 80
	MaxTrainerBioLength       = 600
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
