package config

import (
	"log"
	"os"

	"github.com/AyushDadhich07/rider/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Logger is the process-wide structured logger; tests swap in zap.NewNop()
var Logger = zap.NewNop()

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitLogger builds the production zap logger (JSON, ISO8601 timestamps)
func InitLogger() {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]interface{}{"service": "ride-share-api"}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	Logger = l
}

// InitDB opens the SQLite database and runs additive migrations.
// Migration never drops or recreates existing tables, so records survive
// restarts.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "ride_share.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err = DB.AutoMigrate(&models.RideRequest{}); err != nil {
		Logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	Logger.Info("Database connected and migrated")
}
