package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cobros-backend/internal/config"
	handler "cobros-backend/internal/handlers"
	"cobros-backend/internal/repository"
	"cobros-backend/internal/services/facturas"
	"cobros-backend/internal/services/notify"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	log := logrus.WithField("service", "cobros-backend")

	facturaRepo := repository.NewFacturaRepository(db)
	logRepo := repository.NewNotificationLogRepository(db)

	facturaService := facturas.NewService(facturaRepo, log.WithField("component", "facturas"))

	renderer := notify.NewRenderer(cfg.Template, cfg.Firma)
	dispatcher := notify.NewDispatcher(cfg.WhatsAppURL, cfg.WhatsAppKey, log.WithField("component", "dispatcher"))
	notifyService := notify.NewService(facturaRepo, logRepo, renderer, dispatcher, log.WithField("component", "notify"))

	facturaHandler := handler.NewFacturaHandler(facturaService, log.WithField("component", "handler"))
	notifyHandler := handler.NewNotifyHandler(notifyService, log.WithField("component", "handler"))

	// Health check
	r.GET("/status", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "cobros-backend"})
	})

	r.GET("/facturas", facturaHandler.List)
	r.POST("/facturas", facturaHandler.Create)
	r.PUT("/facturas/:id", facturaHandler.Update)
	r.DELETE("/facturas/:id", facturaHandler.Delete)

	r.POST("/upload-file", facturaHandler.Upload)
	r.POST("/notificar", notifyHandler.Notificar)
	r.GET("/reporte/mensual", facturaHandler.ReporteMensual)
}
