package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application reads.
type AppConfig struct {
	Port string
	Env  string

	MongoURI           string
	MongoDB            string
	ProductsCollection string
	PostsCollection    string

	AdminUsername string
	AdminPassword string
	AdminUsers    string
	SecretKey     string

	AdsenseClient        string
	AdsenseSlotTop       string
	AdsenseSlotInArticle string
	AdsTxtContent        string

	CorsAllowedOrigins []string
	CloudinaryURL      string
}

// Load reads configuration from a .env file or the environment.
// Every value is optional; a missing MONGODB_URI disables persistence
// rather than failing startup.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &AppConfig{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENVIRONMENT", "development"),

		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDB:            getEnv("MONGO_DB", "fashiondb"),
		ProductsCollection: getEnv("MONGO_COLLECTION", "products"),
		PostsCollection:    getEnv("MONGO_POSTS_COLLECTION", "posts"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password"),
		AdminUsers:    getEnv("ADMIN_USERS", ""),
		SecretKey:     getEnv("SECRET_KEY", "your-secret-key-here"),

		AdsenseClient:        getEnv("ADSENSE_CLIENT", ""),
		AdsenseSlotTop:       getEnv("ADSENSE_SLOT_TOP", ""),
		AdsenseSlotInArticle: getEnv("ADSENSE_SLOT_INARTICLE", ""),
		AdsTxtContent:        getEnv("ADS_TXT_CONTENT", ""),

		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CloudinaryURL:      getEnv("CLOUDINARY_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
