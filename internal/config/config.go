package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config configuration de l'application
type Config struct {
	Env         string
	AppSecret   string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string
	JWTExpiry   time.Duration
	Port        string
	SiteName    string
	SiteUrl     string

	TMDBToken string

	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURL  string
	DiscordWebhookURL   string

	// Listes d'autorisation admin, injectées par l'environnement
	// (jamais codées en dur dans les sources)
	AdminIPs        []string
	AdminDiscordIDs []string
}

// Load charge la configuration depuis l'environnement
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "720")) // 30 jours

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "ztvplus")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【AVERTISSEMENT】clé par défaut en production ! Définissez APP_SECRET immédiatement.")
	}

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		AppSecret:   appSecret,
		DatabaseURL: dbURL,
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		JWTExpiry:   time.Duration(expiryHours) * time.Hour,
		Port:        getEnv("PORT", "5008"),
		SiteName:    getEnv("SITE_NAME", "ZTVPlus"),
		SiteUrl:     getEnv("SITE_URL", "http://localhost:5008"),

		TMDBToken: getEnv("TMDB_TOKEN", ""),

		DiscordClientID:     getEnv("DISCORD_CLIENT_ID", ""),
		DiscordClientSecret: getEnv("DISCORD_CLIENT_SECRET", ""),
		DiscordRedirectURL:  getEnv("DISCORD_REDIRECT_URL", getEnv("SITE_URL", "http://localhost:5008")+"/api/auth/discord/callback"),
		DiscordWebhookURL:   getEnv("DISCORD_WEBHOOK_URL", ""),

		AdminIPs:        getEnvList("ADMIN_IPS"),
		AdminDiscordIDs: getEnvList("ADMIN_DISCORD_IDS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList lit une liste séparée par des virgules (entrées vides ignorées)
func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
