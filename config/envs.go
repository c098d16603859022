package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	PublicURL     string // Externally reachable base URL, used in share links
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	RedisAddr     string // host:port of the Redis server
	RedisPassword string // Password for Redis, empty when unauthenticated
	RedisDB       int    // Redis logical database
	MazeCacheTTL  int    // Seconds a generated layout stays cached
	BoardTTL      int    // Seconds an idle leaderboard is kept, 0 keeps it forever
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load populates Envs from the environment, reading a .env file first when
// one is present. Missing required variables are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("[APP] .env file not found or could not be loaded: %v", err)
	}

	restPort := mustGetEnvAsInt("REST_PORT")
	hostIP := mustGetEnv("HOST_IP")

	Envs = Config{
		HostIP:        hostIP,
		RESTPort:      restPort,
		PublicURL:     getEnvWithDefault("PUBLIC_URL", "http://"+hostIP+":"+strconv.Itoa(restPort)),
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		RedisAddr:     mustGetEnv("REDIS_ADDR"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsIntWithDefault("REDIS_DB", 0),
		MazeCacheTTL:  getEnvAsIntWithDefault("MAZE_CACHE_TTL", 3600),
		BoardTTL:      getEnvAsIntWithDefault("LEADERBOARD_TTL", 0),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
	}
	return Envs
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		logrus.Fatalf("[APP] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
