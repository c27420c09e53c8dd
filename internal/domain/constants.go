package domain

import "github.com/m04kA/office-hours-service/pkg/types"

// Scheduling constants
const (
	SlotMinutes        = 30
	DefaultHorizonDays = 7
	MaxHorizonDays     = 31
)

// Default office hours for newly added professors
const (
	DefaultOfficeHoursStart types.TimeString = "10:00"
	DefaultOfficeHoursEnd   types.TimeString = "13:00"
)

// Registration constraints
const (
	MaxStudentNumberLength = 9
	MinPasswordLength      = 8
)

// DateFormat ISO date used for DATE columns
const DateFormat = "2006-01-02"
