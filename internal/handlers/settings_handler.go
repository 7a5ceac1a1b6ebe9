package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/httpresp"
	ucReservation "github.com/sitekit-labs/sitekit-api/internal/usecase/reservation"
)

type SettingsHandler struct {
	update *ucReservation.UpdateSettings
	logger zerolog.Logger
}

func NewSettingsHandler(update *ucReservation.UpdateSettings, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		update: update,
		logger: logger,
	}
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var in ucReservation.UpdateSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed settings payload.")
		return
	}

	settings, err := h.update.Execute(c.Request.Context(), actorID(c), in)
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.OK(c, settings)
}
