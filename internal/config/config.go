package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Embed    EmbedConfig
	Gemini   GeminiConfig
	Retrieve RetrieveConfig
	Ingest   IngestConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	Version            string
}

type DatabaseConfig struct {
	Connection   string
	PassageTable string
	MatchRPC     string
}

type EmbedConfig struct {
	BaseURL   string
	Model     string
	Dimension int
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
}

type RetrieveConfig struct {
	TopK             int
	MatchThreshold   float64
	RetrievalTimeout time.Duration
	ModelTimeout     time.Duration
}

type IngestConfig struct {
	DataDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			Version:            getEnv("APP_VERSION", "dev"),
		},
		Database: DatabaseConfig{
			Connection:   getEnv("DB_CONNECTION_STRING", ""),
			PassageTable: getEnv("PASSAGE_TABLE", "banking_handbook"),
			MatchRPC:     getEnv("MATCH_RPC", "match_banking_handbook"),
		},
		Embed: EmbedConfig{
			BaseURL:   getEnv("EMBED_BASE_URL", "http://localhost:11434"),
			Model:     getEnv("EMBED_MODEL", "intfloat/multilingual-e5-base"),
			Dimension: getEnvAsInt("EMBED_DIMENSION", 768),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature:     getEnvAsFloat("GEN_TEMPERATURE", 0.2),
			MaxOutputTokens: getEnvAsInt("GEN_MAX_OUTPUT_TOKENS", 1024),
		},
		Retrieve: RetrieveConfig{
			TopK:             getEnvAsInt("RETRIEVE_TOP_K", 5),
			MatchThreshold:   getEnvAsFloat("MATCH_THRESHOLD", 0.0),
			RetrievalTimeout: getEnvAsDuration("RETRIEVAL_TIMEOUT", 8*time.Second),
			ModelTimeout:     getEnvAsDuration("MODEL_TIMEOUT", 20*time.Second),
		},
		Ingest: IngestConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
