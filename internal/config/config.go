package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	JWTSecret     string
	TokenTTLHours int
	LogFile       string
}

// Load reads configuration from the environment (a local .env file is
// honored when present). A missing JWT_SECRET aborts startup: the server
// must never issue tokens signed with an empty key.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "jobdesk.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("[config] JWT_SECRET is required; refusing to start")
	}
	ttl := 72
	if s := os.Getenv("TOKEN_TTL_HOURS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			log.Fatalf("[config] bad TOKEN_TTL_HOURS %q", s)
		}
		ttl = n
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, TokenTTLHours: ttl, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL_HOURS=%d LOG_FILE=%s JWT_SECRET=<redacted>",
		cfg.Port, cfg.DBDSN, cfg.TokenTTLHours, cfg.LogFile)
	return cfg
}
