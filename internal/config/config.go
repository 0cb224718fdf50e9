package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	GinMode         string
	OrgName         string
	OrgEmail        string
	OrgPassword     string
	SeedDepartments bool
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "jobboard"),
		DBPassword:      getEnv("DB_PASSWORD", "jobboard"),
		DBName:          getEnv("DB_NAME", "job_board"),
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		GinMode:         getEnv("GIN_MODE", "debug"),
		OrgName:         getEnv("ORG_NAME", "Hireloop"),
		OrgEmail:        getEnv("ORG_EMAIL", "admin@hireloop.dev"),
		OrgPassword:     getEnv("ORG_PASSWORD", "changeme"),
		SeedDepartments: getEnv("SEED_DEPARTMENTS", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
