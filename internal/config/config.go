package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver"` // mysql | postgres
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	AI struct {
		APIKey         string `yaml:"apiKey"`
		PrimaryModel   string `yaml:"primaryModel"`
		FallbackModel  string `yaml:"fallbackModel"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"ai"`
}

// Well-known placeholder values people leave in sample configs; any of these
// means "no live AI capability", same as a blank key.
var placeholderKeys = map[string]bool{
	"changeme":          true,
	"your-api-key-here": true,
	"your_api_key_here": true,
	"replace-me":        true,
	"sk-xxxx":           true,
}

// Load baca file config.yaml; OPENAI_API_KEY env overrides the AI key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	return &cfg, nil
}

// HasLiveAI reports whether a usable provider credential is configured.
func (c *Config) HasLiveAI() bool {
	key := strings.TrimSpace(c.AI.APIKey)
	if key == "" {
		return false
	}
	return !placeholderKeys[strings.ToLower(key)]
}

// AITimeoutSeconds with a sane default for per-tier deadlines
func (c *Config) AITimeoutSeconds() int {
	if c.AI.TimeoutSeconds <= 0 {
		return 45
	}
	return c.AI.TimeoutSeconds
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// Helper untuk build DSN Postgres
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
