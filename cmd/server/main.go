package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cobros-backend/internal/config"
	"cobros-backend/internal/models"
	"cobros-backend/internal/routes"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on system env")
	}

	cfg := config.FromEnv()
	db := config.InitDB()

	db.AutoMigrate(
		&models.Factura{},
		&models.ImportBatch{},
		&models.NotificationLog{},
	)

	r := gin.Default()
	r.Use(cors.Default())

	routes.RegisterRoutes(r, db, cfg)

	r.Run(":" + cfg.Port)
}
