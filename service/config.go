package service

import "os"

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string
	LogFile     string

	Gemini struct {
		APIKey string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/adgenius.db"),
		LogFile:     getEnv("LOG_FILE", ""),
	}

	// The key may be absent; generation then reports a configuration error
	// instead of the app refusing to start.
	config.Gemini.APIKey = getEnv("GEMINI_API_KEY", "")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
