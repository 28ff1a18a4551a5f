package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/cache"
	"github.com/serenespa/booking-api/internal/config"
	"github.com/serenespa/booking-api/internal/handlers"
	infraRepo "github.com/serenespa/booking-api/internal/infra/repository"
	"github.com/serenespa/booking-api/internal/middleware"
	"github.com/serenespa/booking-api/internal/smtp"
	ucAppointment "github.com/serenespa/booking-api/internal/usecase/appointment"
	ucNotification "github.com/serenespa/booking-api/internal/usecase/notification"
	"github.com/serenespa/booking-api/internal/whatsapp"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slots := cache.NewAvailability(cfg.RedisURL)

	mailer := smtp.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	waSender := whatsapp.NewSender(
		cfg.WhatsAppAPIBase,
		cfg.WhatsAppAccessToken,
		cfg.WhatsAppPhoneNumberID,
	)

	// ======================================================
	// 🧠 USE CASES — NOTIFICATIONS
	// ======================================================
	dispatchUC := ucNotification.NewDispatch(
		appointmentRepo,
		waSender,
		mailer,
		cfg.AdminWhatsAppNumber,
		cfg.AdminEmail,
	)

	notifyTrigger := ucNotification.NewTrigger(dispatchUC)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		slots,
	)

	createBookingUC := ucAppointment.NewCreatePublicBooking(
		appointmentRepo,
		auditDispatcher,
		slots,
		notifyTrigger,
		cfg.Timezone,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
		cfg.Timezone,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, createBookingUC)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
	)

	notificationHandler := handlers.NewNotificationHandler(dispatchUC)
	emailHandler := handlers.NewEmailHandler(mailer)

	// ======================================================
	// 📣 NOTIFICATION ENDPOINTS (service token)
	// ======================================================
	notify := r.Group("/")
	notify.Use(middleware.ServiceTokenMiddleware(cfg))
	{
		notify.POST("/send-booking-notifications", notificationHandler.Send)
		notify.POST("/send-email", emailHandler.Send)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (booking form)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.ListPublic)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.POST("/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 API PRIVADA (dashboard)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/clients/:id/appointments", clientHandler.History)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
