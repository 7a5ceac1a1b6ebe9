package httperr

import "errors"

// Error codes raised by the reservation core.
const (
	CodeConfigurationMissing = "configuration_missing"
	CodeDayClosed            = "day_closed"
	CodeSlotConflict         = "slot_conflict"
	CodeNotFound             = "reservation_not_found"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidTimeSlot      = "invalid_time_slot"
	CodeInvalidStatus        = "invalid_status"
	CodeDateInPast           = "date_in_past"
	CodeTooFarInAdvance      = "too_far_in_advance"
	CodeServiceNotOffered    = "service_not_offered"
	CodeInvalidBusinessHours = "invalid_business_hours"
	CodeInvalidSettings      = "invalid_settings"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
