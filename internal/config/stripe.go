package config

import (
	"encoding/json"
	"os"
	"strings"
)

// StripeConfig holds the billing provider credentials. It can come from a
// single JSON env blob, discrete env vars, or the system_settings store, in
// that priority order.
type StripeConfig struct {
	Mode           string `json:"mode"`
	PublishableKey string `json:"publishable_key"`
	SecretKey      string `json:"secret_key"`
	WebhookSecret  string `json:"webhook_secret"`
}

// StripeConfigFromEnvJSON parses STRIPE_CONFIG_JSON (or STRIPE_CONFIG) as a
// full config blob. A set-but-unparsable blob is treated as absent so the
// chain can fall through to the next source.
func StripeConfigFromEnvJSON() (*StripeConfig, bool) {
	blob := os.Getenv("STRIPE_CONFIG_JSON")
	if blob == "" {
		blob = os.Getenv("STRIPE_CONFIG")
	}
	if blob == "" {
		return nil, false
	}

	var cfg StripeConfig
	if err := json.Unmarshal([]byte(blob), &cfg); err != nil {
		return nil, false
	}
	return &cfg, true
}

// StripeConfigFromEnvVars assembles a config from the discrete STRIPE_* env
// vars. The source counts as present when a secret key or webhook secret is
// set.
func StripeConfigFromEnvVars() (*StripeConfig, bool) {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secretKey == "" && webhookSecret == "" {
		return nil, false
	}

	mode := os.Getenv("STRIPE_MODE")
	if mode == "" {
		mode = "test"
	}

	return &StripeConfig{
		Mode:           mode,
		PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		SecretKey:      secretKey,
		WebhookSecret:  webhookSecret,
	}, true
}

// StripeMockBaseURL returns the alternate billing API root, set only when
// mock mode is explicitly enabled alongside a base URL. Used to point
// subscription/invoice lookups at stripe-mock in integration tests.
func StripeMockBaseURL() (string, bool) {
	if os.Getenv("STRIPE_USE_MOCK") != "true" {
		return "", false
	}
	base := strings.TrimSuffix(os.Getenv("STRIPE_API_BASE_URL"), "/")
	if base == "" {
		return "", false
	}
	return base, true
}
