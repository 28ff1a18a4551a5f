package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	ucAppointment "github.com/serenespa/booking-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreatePublicBooking
}

func NewPublicHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreatePublicBooking,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// AVAILABILITY (advisory)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}

	availability, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date: dateStr,
			Time: c.Query("time"),
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "failed to load availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid booking payload")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreatePublicBookingInput{
			ClientName:  req.Name,
			ClientPhone: req.Phone,
			ClientEmail: req.Email,
			ServiceType: req.ServiceType,
			Date:        req.Date,
			Time:        req.Time,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func mapBookingError(c *gin.Context, err error) {
	for _, code := range []string{
		"name_required",
		"phone_required",
		"service_required",
		"date_and_time_required",
		"invalid_date_or_time",
		"invalid_email_domain",
		"slot_in_past",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "invalid booking request")
			return
		}
	}

	if httperr.IsBusiness(err, "time_conflict") {
		httperr.Conflict(c, "time_conflict", "That time slot is already booked. Please select another time.")
		return
	}

	httperr.Internal(c, "failed_to_create_booking", "failed to create booking")
}
