package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the environment, loading a local .env
// file first when one exists (absent in production deployments is fine).
//
// Recognized variables: HTTP_ADDR, DATABASE_DSN, JWT_SECRET,
// TOKEN_TTL_MINUTES, SAGEMAKER_ENDPOINT_NAME, AWS_REGION, CORS_ORIGIN.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("SAGEMAKER_ENDPOINT_NAME"); v != "" {
		config.SageMakerEndpointName = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.AWSRegion = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
}
