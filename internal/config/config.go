package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outgoing mail configuration. An empty Host disables
// email sending entirely.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// PayrollConfig holds the tunables of the time-clock and payroll engine.
type PayrollConfig struct {
	// OvertimeThresholdHours is the hours boundary per pay period beyond
	// which the overtime rate applies.
	OvertimeThresholdHours float64
	// MealBreakThreshold is how long a session may run without a lunch
	// punch before a reminder is sent.
	MealBreakThreshold time.Duration
	// MinimumShift is the shortest allowed clock_in..clock_out span.
	MinimumShift time.Duration
	// DuplicatePunchWindow guards against double-submitted punches of the
	// same type.
	DuplicatePunchWindow time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine in production, env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@paycheck-labs.dev"),
	}

	overtimeThreshold, err := strconv.ParseFloat(getEnv("PAYROLL_OVERTIME_THRESHOLD_HOURS", "40"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_OVERTIME_THRESHOLD_HOURS: %w", err)
	}

	mealBreakThreshold, err := time.ParseDuration(getEnv("TIMECLOCK_MEAL_BREAK_THRESHOLD", "5h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECLOCK_MEAL_BREAK_THRESHOLD: %w", err)
	}

	minimumShift, err := time.ParseDuration(getEnv("TIMECLOCK_MINIMUM_SHIFT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECLOCK_MINIMUM_SHIFT: %w", err)
	}

	duplicateWindow, err := time.ParseDuration(getEnv("TIMECLOCK_DUPLICATE_PUNCH_WINDOW", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECLOCK_DUPLICATE_PUNCH_WINDOW: %w", err)
	}

	config.Payroll = PayrollConfig{
		OvertimeThresholdHours: overtimeThreshold,
		MealBreakThreshold:     mealBreakThreshold,
		MinimumShift:           minimumShift,
		DuplicatePunchWindow:   duplicateWindow,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.OvertimeThresholdHours <= 0 {
		return fmt.Errorf("PAYROLL_OVERTIME_THRESHOLD_HOURS must be positive")
	}
	if c.Payroll.MinimumShift < 0 {
		return fmt.Errorf("TIMECLOCK_MINIMUM_SHIFT must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
