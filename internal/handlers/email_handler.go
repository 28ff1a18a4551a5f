package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/smtp"
	"github.com/serenespa/booking-api/internal/usecase/notification"
)

// EmailHandler exposes raw email delivery at POST /send-email. Missing
// SMTP configuration is a soft success: email is optional
// infrastructure, not a hard dependency of anything that calls this.
type EmailHandler struct {
	mailer notification.Mailer
}

func NewEmailHandler(mailer notification.Mailer) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (h *EmailHandler) Send(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to and subject are required"})
		return
	}

	if req.To == "" || req.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to and subject are required"})
		return
	}

	err := h.mailer.Send(c.Request.Context(), req.To, req.Subject, req.HTML)

	if errors.Is(err, smtp.ErrNotConfigured) {
		log.Println("SMTP not configured, email not sent")
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "SMTP not configured"})
		return
	}

	if err != nil {
		log.Printf("email error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
