package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App holds the environment-driven settings consumed by the renderer and the
// dispatcher. Defaults match the documented reference deployment.
type App struct {
	Port        string
	WhatsAppURL string
	WhatsAppKey string
	Template    string
	Firma       string
}

func FromEnv() App {
	return App{
		Port:        getenv("PORT", "8080"),
		WhatsAppURL: getenv("WA_API_URL", "https://api.whatsapp.example/v1/messages"),
		WhatsAppKey: os.Getenv("WA_API_KEY"),
		Template:    os.Getenv("MSG_TEMPLATE"),
		Firma:       getenv("MSG_FIRMA", "Noa Cobros"),
	}
}

func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("cannot connect to database")
	}
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
