package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/httperr"
)

var businessMessages = map[string]string{
	httperr.CodeConfigurationMissing: "Reservation settings are not configured.",
	httperr.CodeDayClosed:            "We are closed on that day.",
	httperr.CodeSlotConflict:         "That time slot is already booked.",
	httperr.CodeNotFound:             "Reservation not found.",
	httperr.CodeInvalidDate:          "Invalid date, expected YYYY-MM-DD.",
	httperr.CodeInvalidTimeSlot:      "Invalid time slot, expected HH:MM.",
	httperr.CodeInvalidStatus:        "Unknown reservation status.",
	httperr.CodeDateInPast:           "Reservations cannot be made for past dates.",
	httperr.CodeTooFarInAdvance:      "That date is beyond the booking window.",
	httperr.CodeServiceNotOffered:    "That service is not offered.",
	httperr.CodeInvalidBusinessHours: "Business hours must be HH:MM with open before close.",
	httperr.CodeInvalidSettings:      "Invalid settings values.",
}

// mapBusinessError turns core errors into 400/404 with a readable message;
// anything unrecognized is logged and reported as a generic 500.
func mapBusinessError(c *gin.Context, logger zerolog.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		msg := businessMessages[code]
		if msg == "" {
			msg = "Request could not be processed."
		}

		if code == httperr.CodeNotFound {
			httperr.NotFound(c, code, msg)
			return
		}

		httperr.BadRequest(c, code, msg)
		return
	}

	logger.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	httperr.Internal(c, "internal_error", "Unexpected error.")
}
