package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/usecase/notification"
)

// NotificationHandler exposes the dispatch trigger. The wire contract
// mirrors what booking frontends already expect: {ok:true} / {error}.
type NotificationHandler struct {
	dispatchUC *notification.Dispatch
}

func NewNotificationHandler(dispatchUC *notification.Dispatch) *NotificationHandler {
	return &NotificationHandler{dispatchUC: dispatchUC}
}

type sendNotificationsRequest struct {
	AppointmentID string `json:"appointment_id"`
}

// Send handles POST /send-booking-notifications.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req sendNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_id is required"})
		return
	}

	summary, err := h.dispatchUC.Execute(c.Request.Context(), req.AppointmentID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_id_required"):
			c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_id is required"})
		case httperr.IsBusiness(err, "appointment_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"channels": summary.Channels,
	})
}
