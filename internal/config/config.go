package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. The shared
// API token and database DSNs are read exactly once here.
type Config struct {
	APIToken  string
	Port      string
	LogFile   string
	Databases map[string]string // logical name -> Postgres DSN
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	databases := map[string]string{}
	if dsn := os.Getenv("DB_MAIN"); dsn != "" {
		databases[MainDB] = dsn
	}
	if dsn := os.Getenv("DB_ANALYTICS"); dsn != "" {
		databases[AnalyticsDB] = dsn
	}

	return Config{
		APIToken:  os.Getenv("API_TOKEN"),
		Port:      getEnv("PORT", "8080"),
		LogFile:   getEnv("LOG_FILE", "./logs/app.log"),
		Databases: databases,
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
