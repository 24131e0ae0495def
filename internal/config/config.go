package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"time"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Store struct {
	Backend  string
	FilePath string
}

type Config struct {
	DB               DB
	Store            Store
	AuthMode         string
	SimulatedLatency time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "campusnet"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadStore() Store {
	return Store{
		Backend:  getEnv("STORE_BACKEND", "file"),
		FilePath: getEnv("STORE_FILE_PATH", "campusnet_store.json"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		DB:               LoadDB(),
		Store:            LoadStore(),
		AuthMode:         getEnv("AUTH_MODE", "mock"),
		SimulatedLatency: parseDuration(getEnv("SIMULATED_LATENCY", "800ms"), 800*time.Millisecond),
	}
}
