package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration (Brevo)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender email (different from SMTP login)
	SMTPFromName  string // Display name on outbound mail, bound to the business identity
	// Inquiry routing
	ContactEmailTo       string // Business inbox receiving inquiries
	FallbackContactEmail string // Surfaced to users when delivery fails
	WhatsAppNumber       string // Digits with country code, for the handoff deep link
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitInquiryThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost: getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		// SMTP_PASS honored as a fallback for older deployments
		SMTPPassword:  getEnv("SMTP_PASSWORD", getEnv("SMTP_PASS", "")),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@techfixsolutions.in"), // Must be verified in Brevo
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "TechFix Computer Solutions"),
		// Inquiry routing
		ContactEmailTo:       getEnv("CONTACT_EMAIL_TO", "info@techfixsolutions.in"),
		FallbackContactEmail: getEnv("FALLBACK_CONTACT_EMAIL", "info@techfixsolutions.in"),
		WhatsAppNumber:       getEnv("WHATSAPP_NUMBER", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitInquiryThreshold: getEnvInt("RATE_LIMIT_INQUIRY_THRESHOLD", 5), // 5 submissions per window per IP
	}

	// Surface misconfiguration at startup instead of on the first inquiry
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials missing. Inquiry emails will be logged, not delivered.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
