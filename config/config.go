package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
	DefaultOTPTTL                = 5 * time.Minute
	DefaultSignupTokenTTL        = 10 * time.Minute
	DefaultOTPResendCooldown     = 30 * time.Second
	DefaultOTPMaxAttempts        = 5
	DefaultSMTPPort              = 587
	DefaultRateLimitPerMinute    = 100
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	OTPTTL            time.Duration
	SignupTokenTTL    time.Duration
	OTPResendCooldown time.Duration
	OTPMaxAttempts    int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Path to a Firebase service account file. Empty disables push.
	FCMCredentialsFile string

	// Redis connection URL. Empty disables the rate limiter.
	RedisURL           string
	RateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", DefaultPort),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),

		OTPTTL:            getEnvAsDuration("OTP_TTL", DefaultOTPTTL),
		SignupTokenTTL:    getEnvAsDuration("SIGNUP_TOKEN_TTL", DefaultSignupTokenTTL),
		OTPResendCooldown: getEnvAsDuration("OTP_RESEND_COOLDOWN", DefaultOTPResendCooldown),
		OTPMaxAttempts:    getEnvAsInt("OTP_MAX_ATTEMPTS", DefaultOTPMaxAttempts),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),

		FCMCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}
