package config

import (
	"os"
	"strconv"
	"time"
)

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for the log and snapshot uploads.
type BucketConfiguration struct {
	Region         string
	Endpoint       string
	AccessKey      string
	AccessSecret   string
	LogBucket      string
	SnapshotBucket string
}

// Sources configuration with the third party API endpoints.
type SourcesConfiguration struct {
	InTeleriaURL string
	HellHadesURL string
}

// Single rate limit window.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Limits for the outgoing requests against the source APIs.
type LimitsConfiguration struct {
	Lower      LimitWindow
	Higher     LimitWindow
	BatchSize  int
	BatchDelay time.Duration
}

var (
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Bucket   BucketConfiguration
	Sources  SourcesConfiguration
	Limits   LimitsConfiguration
)

// Load the variables from the environment.
func LoadEnv() {
	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = os.Getenv("DATABASE_NAME")
	Database.MigrationsPath = getEnvOrDefault("MIGRATIONS_PATH", "migrations")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOGS")
	Bucket.SnapshotBucket = os.Getenv("BUCKET_SNAPSHOTS")

	// Load the source API endpoints.
	Sources.InTeleriaURL = getEnvOrDefault("INTELERIA_URL", "https://www.inteleria.com/wp-json/in-champions/v1")
	Sources.HellHadesURL = getEnvOrDefault("HELLHADES_URL", "https://hellhades.com/wp-json/hh-api/v3")

	// Load the rate limits for the source APIs.
	// The defaults are conservative since both sources are community run sites.
	Limits.Lower = LimitWindow{
		Count:         getEnvIntOrDefault("LIMIT_LOWER_COUNT", 20),
		ResetInterval: time.Duration(getEnvIntOrDefault("LIMIT_LOWER_SECONDS", 1)) * time.Second,
	}
	Limits.Higher = LimitWindow{
		Count:         getEnvIntOrDefault("LIMIT_HIGHER_COUNT", 500),
		ResetInterval: time.Duration(getEnvIntOrDefault("LIMIT_HIGHER_SECONDS", 60)) * time.Second,
	}
	Limits.BatchSize = getEnvIntOrDefault("ENRICH_BATCH_SIZE", 20)
	Limits.BatchDelay = time.Duration(getEnvIntOrDefault("ENRICH_BATCH_DELAY_MS", 500)) * time.Millisecond
}

// Return the environment value or the default if it's not set.
func getEnvOrDefault(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// Return the environment value as a int or the default if it's not set or invalid.
func getEnvIntOrDefault(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}
