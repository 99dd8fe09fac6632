package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	ZoomAccountID    string
	ZoomClientID     string
	ZoomClientSecret string
	ZoomHostEmails   []string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	WhatsAppAPIURL string
	WhatsAppToken  string

	MidtransServerKey string
	RedisURL          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	ZoomAccountID = GetEnv("ZOOM_ACCOUNT_ID")
	ZoomClientID = GetEnv("ZOOM_CLIENT_ID")
	ZoomClientSecret = GetEnv("ZOOM_CLIENT_SECRET")
	ZoomHostEmails = splitCSV(GetEnv("ZOOM_HOST_EMAILS"))

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnv("SMTP_PORT", "587")
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPass = GetEnv("SMTP_PASS")
	SMTPFrom = GetEnv("SMTP_FROM", SMTPUser)

	WhatsAppAPIURL = GetEnv("WHATSAPP_API_URL")
	WhatsAppToken = GetEnv("WHATSAPP_TOKEN")

	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	RedisURL = GetEnv("REDIS_URL")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
	if ZoomClientID == "" {
		log.Println("⚠️ ZOOM_CLIENT_ID not set, zoom provisioning disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
