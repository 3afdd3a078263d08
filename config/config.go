package config

import (
	"os"
	"strings"

	"systers-portal/internal/util"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecret     string
	SecureCookies bool

	RedisAddr     string
	RedisPassword string

	AllowedOrigins []string

	AdminUsername string
	AdminPassword string
}

func LoadConfig() Config {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:        os.Getenv("APP_ENV"),
		Port:          os.Getenv("PORT"),
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "portal.db"
	}

	switch strings.ToLower(os.Getenv("SECURE_COOKIES")) {
	case "1", "true", "yes":
		cfg.SecureCookies = true
	}

	cfg.AllowedOrigins = util.SplitList(os.Getenv("ALLOWED_ORIGINS"))

	return cfg
}

func (c Config) IsDevelopment() bool {
	return strings.HasPrefix(strings.ToLower(c.AppEnv), "dev")
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=disable"
}
