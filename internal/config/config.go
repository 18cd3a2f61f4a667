package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes configuration to packages that should not depend on Config directly.
type Provider interface {
	GetServerAddr() string
	GetBasePath() string
	GetThemeFile() string
	GetThemeWatch() bool
	GetGroupMax() int
	GetMountTTL() time.Duration
	GetEventRate() int
	GetMaxMounts() int
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr string
	BasePath   string
	ThemeFile  string
	ThemeWatch bool
	GroupMax   int
	MountTTL   time.Duration
	EventRate  int
	MaxMounts  int
	LogFormat  string
	LogLevel   string
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		BasePath:   getEnv("APP_BASE_PATH", "/avatars"),
		ThemeFile:  os.Getenv("THEME_FILE"),
		ThemeWatch: getBool("THEME_WATCH", false),
		GroupMax:   getPositiveInt("GROUP_MAX", 5),
		MountTTL:   getDuration("MOUNT_TTL", 30*time.Minute),
		EventRate:  getPositiveInt("EVENT_RATE", 20),
		MaxMounts:  getPositiveInt("MAX_MOUNTS", 10000),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		LogLevel:   getEnv("LOG_LEVEL", "debug"),
	}
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetBasePath() string { return c.BasePath }
func (c *Config) GetThemeFile() string { return c.ThemeFile }
func (c *Config) GetThemeWatch() bool { return c.ThemeWatch }
func (c *Config) GetGroupMax() int { return c.GroupMax }
func (c *Config) GetMountTTL() time.Duration { return c.MountTTL }
func (c *Config) GetEventRate() int { return c.EventRate }
func (c *Config) GetMaxMounts() int { return c.MaxMounts }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getPositiveInt ignores zero and negative values.
func getPositiveInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		if os.Getenv(key) != "" {
			log.Printf("Ignoring invalid %s=%q, using %d", key, os.Getenv(key), fallback)
		}
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
