package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	HR       HRConfig       `yaml:"hr"`
	OTP      OTPConfig      `yaml:"otp"`
	Payments PaymentsConfig `yaml:"payments"`
	Referral ReferralConfig `yaml:"referral"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// HRConfig contains the referral-fetch webhook settings
type HRConfig struct {
	WebhookURL     string `yaml:"webhook_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// OTPConfig contains passcode issuance and delivery settings
type OTPConfig struct {
	CodeLength    int    `yaml:"code_length"`
	ExpiryMinutes int    `yaml:"expiry_minutes"`
	Delivery      string `yaml:"delivery"` // "webhook" or "sendgrid"
	WebhookURL    string `yaml:"webhook_url"`
	SendGridKey   string `yaml:"sendgrid_api_key"`
	FromEmail     string `yaml:"from_email"`
	FromName      string `yaml:"from_name"`
	// TestEmail always receives TestCode instead of a random passcode.
	// Demo/testing bypass only, never a production security property.
	TestEmail     string `yaml:"test_email"`
	TestCode      string `yaml:"test_code"`
	SweepSchedule string `yaml:"sweep_schedule"`
}

// PaymentsConfig contains the referral payment business constants
type PaymentsConfig struct {
	AssessmentAmount       int `yaml:"assessment_amount"`
	ProbationAmount        int `yaml:"probation_amount"`
	ProbationThresholdDays int `yaml:"probation_threshold_days"`
}

// ReferralConfig contains classification and reminder settings
type ReferralConfig struct {
	SourceMarker    string `yaml:"source_marker"`
	WhatsAppPrefix  string `yaml:"whatsapp_prefix"`
	ReminderMessage string `yaml:"reminder_message"`
}

// JWTConfig contains session token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	PendingTokenExpiry int    `yaml:"pending_token_expiry_minutes"`
	SessionTokenExpiry int    `yaml:"session_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("HR_WEBHOOK_URL"); val != "" {
		c.HR.WebhookURL = val
	}

	if val := os.Getenv("OTP_WEBHOOK_URL"); val != "" {
		c.OTP.WebhookURL = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.OTP.SendGridKey = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// HR webhook validation
	if c.HR.WebhookURL == "" {
		return fmt.Errorf("HR webhook URL is required")
	}
	if c.HR.TimeoutSeconds <= 0 {
		c.HR.TimeoutSeconds = 10
	}

	// OTP defaults. An absent delivery webhook URL is allowed: the notifier
	// degrades to a no-op success for local/demo operation.
	if c.OTP.CodeLength == 0 {
		c.OTP.CodeLength = 6
	}
	if c.OTP.CodeLength < 4 || c.OTP.CodeLength > 10 {
		return fmt.Errorf("invalid OTP code length: %d", c.OTP.CodeLength)
	}
	if c.OTP.ExpiryMinutes == 0 {
		c.OTP.ExpiryMinutes = 5
	}
	if c.OTP.Delivery == "" {
		c.OTP.Delivery = "webhook"
	}
	if c.OTP.Delivery != "webhook" && c.OTP.Delivery != "sendgrid" {
		return fmt.Errorf("unsupported OTP delivery mode: %s", c.OTP.Delivery)
	}
	if c.OTP.Delivery == "sendgrid" && c.OTP.SendGridKey == "" {
		return fmt.Errorf("sendgrid delivery requires an API key")
	}
	if c.OTP.SweepSchedule == "" {
		c.OTP.SweepSchedule = "0 */5 * * * *" // Every 5 minutes
	}

	// Payment defaults
	if c.Payments.AssessmentAmount == 0 {
		c.Payments.AssessmentAmount = 50
	}
	if c.Payments.ProbationAmount == 0 {
		c.Payments.ProbationAmount = 750
	}
	if c.Payments.ProbationThresholdDays == 0 {
		c.Payments.ProbationThresholdDays = 90
	}

	// Referral defaults
	if c.Referral.SourceMarker == "" {
		c.Referral.SourceMarker = "xraf"
	}
	if c.Referral.WhatsAppPrefix == "" {
		c.Referral.WhatsAppPrefix = "6"
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.PendingTokenExpiry == 0 {
		c.JWT.PendingTokenExpiry = 10
	}
	if c.JWT.SessionTokenExpiry == 0 {
		c.JWT.SessionTokenExpiry = 60
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HRTimeout returns the referral fetch timeout as a duration
func (c *Config) HRTimeout() time.Duration {
	return time.Duration(c.HR.TimeoutSeconds) * time.Second
}

// OTPExpiry returns the passcode validity window as a duration
func (c *Config) OTPExpiry() time.Duration {
	return time.Duration(c.OTP.ExpiryMinutes) * time.Minute
}
