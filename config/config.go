package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	MAIN_ROUTES   string
	APP_PORT      string
	JWTSecret     string
	JWTExpiration int

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBLog      string

	MediaRoot       string
	StorageProvider string
	GCSBucket       string
	GCSCredentials  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	NotifyEmails []string

	SnowflakeNode int64
	LogLevel      string
	TimeZone      string

	AdminUsername string
	AdminPassword string

	allowedOrigins map[string]bool
)

func init() {
	applyDefaults()
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	applyDefaults()
	loadAllowedOrigins()
}

func applyDefaults() {
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api/v1")
	APP_PORT = getEnv("APP_PORT", "9000")

	JWTSecret = getEnv("JWT_SECRET", "asset_tracker_secret_key")
	JWTExpiration = getEnvAsInt("JWT_EXPIRATION", 86400)

	DBDriver = getEnv("DB_DRIVER", "sqlite")
	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "5432")
	DBUser = getEnv("DB_USER", "assets")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBName = getEnv("DB_NAME", "assets")
	DBLog = getEnv("DB_LOG", "silent")

	MediaRoot = getEnv("MEDIA_ROOT", "media")
	StorageProvider = strings.ToLower(getEnv("STORAGE_PROVIDER", "local"))
	GCSBucket = getEnv("GCS_BUCKET", "")
	GCSCredentials = getEnv("GCS_CREDENTIALS_JSON", "")

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 465)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPFrom = getEnv("SMTP_FROM", SMTPUser)
	NotifyEmails = getEnvAsList("NOTIFY_EMAILS")

	SnowflakeNode = int64(getEnvAsInt("SNOWFLAKE_NODE", 1))
	LogLevel = getEnv("LOG_LEVEL", "info")
	TimeZone = getEnv("TIMEZONE", "Africa/Nairobi")

	AdminUsername = getEnv("ADMIN_USERNAME", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SMTPEnabled reports whether outgoing mail is configured.
func SMTPEnabled() bool {
	return SMTPHost != "" && len(NotifyEmails) > 0
}

// DebugSQL is true when DB_LOG asks for statement logging.
func DebugSQL() bool {
	return getEnvAsBool("DB_DEBUG", false) || DBLog == "info"
}

func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
			"http://localhost:3000": true,
		}
		return
	}

	for _, origin := range strings.Split(originsStr, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}
