package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/httpresp"
	ucReservation "github.com/sitekit-labs/sitekit-api/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	getSettings    *ucReservation.GetSettings
	availableSlots *ucReservation.GetAvailableSlots
	create         *ucReservation.CreateReservation
	loc            *time.Location
	logger         zerolog.Logger
}

func NewPublicHandler(
	getSettings *ucReservation.GetSettings,
	availableSlots *ucReservation.GetAvailableSlots,
	create *ucReservation.CreateReservation,
	loc *time.Location,
	logger zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		getSettings:    getSettings,
		availableSlots: availableSlots,
		create:         create,
		loc:            loc,
		logger:         logger,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateReservationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot" binding:"required"` // HH:MM
	Notes    string `json:"notes"`
}

////////////////////////////////////////////////////////
// SETTINGS (read-only, defaults created lazily)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSettings(c *gin.Context) {
	settings, err := h.getSettings.Execute(c.Request.Context())
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.OK(c, settings)
}

////////////////////////////////////////////////////////
// AVAILABLE SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Param("date")

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date, expected YYYY-MM-DD.")
		return
	}

	out, err := h.availableSlots.Execute(c.Request.Context(), date)
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// CREATE RESERVATION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed reservation fields.")
		return
	}

	reservation, err := h.create.Execute(
		c.Request.Context(),
		ucReservation.CreateReservationInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Service:  req.Service,
			Date:     req.Date,
			TimeSlot: req.TimeSlot,
			Notes:    req.Notes,
			UserID:   actorID(c),
		},
	)
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.Created(c, reservation)
}
