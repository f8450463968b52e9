package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Messages
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string // "release", "debug" or "test"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path         string
		AutoMigrate  bool   // Create missing tables when serving instead of refusing to start
		MaxOpenConns int    // SQLite allows one writer; keep at 1 unless WAL is configured
		LogLevel     string // gorm logger level: silent, error, warn, info
	}
	Messages struct {
		Language string // Fallback for requests without a usable Accept-Language
	}
)

// loadEnvFiles reads .env and .env.local into the process environment.
// Missing files are not an error; variables already set are not overridden.
func loadEnvFiles(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err == nil {
			log.Printf("Loaded environment from %s", f)
		}
	}
}

func NewConfig() *Config {
	loadEnvFiles(".env", ".env.local")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_auto_migrate", false)
	v.SetDefault("database_max_open_conns", 1)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("messages_language", "en")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:         v.GetString("DATABASE_PATH"),
			AutoMigrate:  v.GetBool("DATABASE_AUTO_MIGRATE"),
			MaxOpenConns: v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			LogLevel:     v.GetString("DATABASE_LOG_LEVEL"),
		},
		Messages: Messages{
			Language: v.GetString("MESSAGES_LANGUAGE"),
		},
	}
}
