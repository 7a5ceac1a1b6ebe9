package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/sitekit-labs/sitekit-api/internal/domain/reservation"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/httpresp"
	"github.com/sitekit-labs/sitekit-api/internal/middleware"
	ucReservation "github.com/sitekit-labs/sitekit-api/internal/usecase/reservation"
)

// ReservationHandler serves the staff-facing reservation management API.
type ReservationHandler struct {
	repo   domain.Repository
	update *ucReservation.UpdateReservation
	delete *ucReservation.DeleteReservation
	logger zerolog.Logger
}

func NewReservationHandler(
	repo domain.Repository,
	update *ucReservation.UpdateReservation,
	del *ucReservation.DeleteReservation,
	logger zerolog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		repo:   repo,
		update: update,
		delete: del,
		logger: logger,
	}
}

func actorID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.repo.List(c.Request.Context())
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in ucReservation.UpdateReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed reservation payload.")
		return
	}

	reservation, err := h.update.Execute(c.Request.Context(), actorID(c), id, in)
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	httpresp.OK(c, reservation)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.delete.Execute(c.Request.Context(), actorID(c), id)
	if err != nil {
		mapBusinessError(c, h.logger, err)
		return
	}

	if !deleted {
		httperr.NotFound(c, httperr.CodeNotFound, "Reservation not found.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
