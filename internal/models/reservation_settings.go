package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SettingsID is the fixed primary key of the settings singleton row.
const SettingsID uint = 1

// DayHours describes a single weekday's opening window. Open and Close
// are zero-padded 24h "HH:MM" strings and only matter when Enabled.
type DayHours struct {
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

// BusinessHours maps lowercase weekday names to their opening windows.
// It round-trips through a jsonb column.
type BusinessHours map[string]DayHours

func (h BusinessHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *BusinessHours) Scan(value any) error {
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*h = nil
		return nil
	}
	return json.Unmarshal(b, h)
}

// StringList is a jsonb-backed string slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("models: unsupported jsonb source type")
	}
}

// ReservationSettings is the site-wide booking configuration. Exactly one
// row exists, created lazily with defaults on first read.
type ReservationSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessHours BusinessHours `gorm:"type:jsonb" json:"business_hours"`

	DefaultDuration int `gorm:"not null;default:60" json:"default_duration"`
	BufferTime      int `gorm:"not null;default:15" json:"buffer_time"`
	MaxAdvanceDays  int `gorm:"not null;default:30" json:"max_advance_days"`

	AllowedServices StringList `gorm:"type:jsonb" json:"allowed_services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
