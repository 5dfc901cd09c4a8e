package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env     string
	API     APIConfig
	Session SessionConfig
	Mock    MockConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	// StatePath is where the encrypted session blob lives.
	StatePath string
	// Secret keys the blob encryption; supplied externally, never
	// compiled in.
	Secret string
}

type MockConfig struct {
	Port string
	// Secret signs the mock backend's session cookies.
	Secret string
}

func Load() *Config {
	// A local .env wins over nothing, real env vars win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not read .env file: %v", err)
	}

	viper.SetEnvPrefix("ADMIN")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api/v1")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("STATE_PATH", defaultStatePath())
	viper.SetDefault("MOCK_PORT", "5000")
	viper.SetDefault("MOCK_SECRET", "dev-only-secret")

	return &Config{
		Env: viper.GetString("ENV"),
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			StatePath: viper.GetString("STATE_PATH"),
			Secret:    viper.GetString("STATE_SECRET"),
		},
		Mock: MockConfig{
			Port:   viper.GetString("MOCK_PORT"),
			Secret: viper.GetString("MOCK_SECRET"),
		},
	}
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "wholesale-admin", "session.enc")
}
