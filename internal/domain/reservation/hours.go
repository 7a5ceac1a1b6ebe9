package reservation

import (
	"time"

	"github.com/sitekit-labs/sitekit-api/internal/models"
)

var weekdayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// WeekdayName maps a date to its lowercase weekday name (0=sunday..6=saturday).
func WeekdayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

func IsWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// DateKey renders the calendar-day component used for slot matching.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func DefaultBusinessHours() models.BusinessHours {
	hours := models.BusinessHours{}
	for i, name := range weekdayNames {
		enabled := i >= 1 && i <= 5
		hours[name] = models.DayHours{
			Enabled: enabled,
			Open:    "09:00",
			Close:   "17:00",
		}
	}
	return hours
}

func DefaultSettings() *models.ReservationSettings {
	return &models.ReservationSettings{
		ID:              models.SettingsID,
		BusinessHours:   DefaultBusinessHours(),
		DefaultDuration: 60,
		BufferTime:      15,
		MaxAdvanceDays:  30,
		AllowedServices: models.StringList{},
	}
}

// ValidHoursString reports whether hm is a zero-padded 24h "HH:MM" value.
func ValidHoursString(hm string) bool {
	if len(hm) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}
