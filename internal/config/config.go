package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the whole app configuration, read from the environment.
type Config struct {
	Port  string
	GoEnv string // dev/prod

	// The acting user and payment method recorded on sales. Request-scoped
	// in the processor; these are only the defaults until auth exists.
	DefaultUserID        int64
	DefaultPaymentMethod string

	// Informational rate used by reports; tax on a sale itself is supplied
	// by the caller.
	TaxRate float64
}

func Load() (Config, error) {
	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		GoEnv:                getenv("GO_ENV", "dev"),
		DefaultPaymentMethod: getenv("DEFAULT_PAYMENT_METHOD", "Cash"),
	}

	userID, err := getenvInt64("DEFAULT_USER_ID", 1)
	if err != nil {
		return Config{}, err
	}
	if userID <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_USER_ID must be positive")
	}
	cfg.DefaultUserID = userID

	rate, err := getenvFloat("TAX_RATE", 0)
	if err != nil {
		return Config{}, err
	}
	if rate < 0 {
		return Config{}, fmt.Errorf("TAX_RATE must be >= 0")
	}
	cfg.TaxRate = rate

	return cfg, nil
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return i, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
