package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// AppID namespaces this instance's comment data inside the shared
	// Firestore project.
	AppID string
	// CredentialsFile is the path to the Firebase service account file. The
	// file may be absent; the application then runs without auth or comments.
	CredentialsFile string
	// InitialAuthToken is an optional token minted by the hosting environment.
	// When empty, the session falls back to anonymous sign-in.
	InitialAuthToken string
	// Port is the port the server should run on.
	Port int
}

// Load reads configuration from the environment, with a .env file as an
// optional source and defaults for every key.
func Load() *ServerConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		log.Println("Invalid PORT value, falling back to 8080")
		port = 8080
	}

	return &ServerConfig{
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		AppID:            getEnv("APP_ID", "default-app-id"),
		CredentialsFile:  getEnv("FIREBASE_CREDENTIALS_FILE", "firebase-config.json"),
		InitialAuthToken: getEnv("INITIAL_AUTH_TOKEN", ""),
		Port:             port,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
