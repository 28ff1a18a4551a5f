package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/httpresp"
	"github.com/serenespa/booking-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "failed to list clients")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// BOOKING HISTORY (per client, newest first)
// ======================================================
func (h *ClientHandler) History(c *gin.Context) {
	clientID := c.Param("id")

	var client models.Client
	if err := h.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}

	var apps []models.Appointment
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("date DESC").
		Order("time DESC").
		Find(&apps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_history", "failed to load booking history")
		return
	}

	c.JSON(200, gin.H{
		"client":       client,
		"appointments": apps,
	})
}
