package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/middleware"
	ucAppointment "github.com/serenespa/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC       *ucAppointment.ListAppointments
	confirmUC    *ucAppointment.ConfirmAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:       listUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func actorFrom(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "unknown"
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.listUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "failed to list appointments")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ======================================================
// CONFIRM
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirmUC.Execute(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		mapStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		mapStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date and time are required")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		actorFrom(c),
		ucAppointment.RescheduleAppointmentInput{
			AppointmentID: c.Param("id"),
			Date:          req.Date,
			Time:          req.Time,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			httperr.Conflict(c, "time_conflict", "That time slot is already booked. Please choose another time.")
			return
		}
		if httperr.IsBusiness(err, "invalid_date_or_time") || httperr.IsBusiness(err, "date_and_time_required") {
			httperr.BadRequest(c, "invalid_date_or_time", "invalid date or time")
			return
		}
		mapStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func mapStateChangeError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "appointment_not_found") {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}
	if httperr.IsBusiness(err, "invalid_state") {
		httperr.BadRequest(c, "invalid_state", "appointment state does not allow this action")
		return
	}

	httperr.Internal(c, "failed_to_update_appointment", "failed to update appointment")
}
