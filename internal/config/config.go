package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is read once in the entrypoints and passed down explicitly.
type Config struct {
	ParamPrefix string

	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	MaxContextItems int
	GenerateTimeout time.Duration

	MaxMessageLength int

	ResendAPIKey      string
	ResendFromEmail   string
	NotificationEmail string

	RecaptchaSecretKey string
	RecaptchaMinScore  float64

	HTTPAddr       string
	AllowedOrigins []string
	LogLevel       slog.Level
}

var defaults = map[string]any{
	"OPENAI_MODEL":        "gpt-4o-mini",
	"OPENAI_BASE_URL":     "https://api.openai.com/v1",
	"MAX_CONTEXT_ITEMS":   5,
	"MAX_MESSAGE_LENGTH":  2000,
	"GENERATE_TIMEOUT":    "12s",
	"RECAPTCHA_MIN_SCORE": 0.5,
	"HTTP_ADDR":           ":8080",
	"ALLOWED_ORIGINS":     "*",
	"LOG_LEVEL":           "info",
}

// keys without defaults still need to be known to viper so config files and
// the environment are both consulted.
var optionalKeys = []string{
	"PARAM_PREFIX",
	"OPENAI_API_KEY",
	"RESEND_API_KEY",
	"RESEND_FROM_EMAIL",
	"NOTIFICATION_EMAIL",
	"RECAPTCHA_SECRET_KEY",
}

// Load reads configuration from the environment and, when v has a config file
// set, from that file. A nil v uses a fresh viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	for _, k := range optionalKeys {
		v.SetDefault(k, "")
	}
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := Config{
		ParamPrefix:        strings.TrimRight(strings.TrimSpace(v.GetString("PARAM_PREFIX")), "/"),
		OpenAIAPIKey:       strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		OpenAIModel:        strings.TrimSpace(v.GetString("OPENAI_MODEL")),
		OpenAIBaseURL:      strings.TrimSpace(v.GetString("OPENAI_BASE_URL")),
		MaxContextItems:    v.GetInt("MAX_CONTEXT_ITEMS"),
		GenerateTimeout:    v.GetDuration("GENERATE_TIMEOUT"),
		MaxMessageLength:   v.GetInt("MAX_MESSAGE_LENGTH"),
		ResendAPIKey:       strings.TrimSpace(v.GetString("RESEND_API_KEY")),
		ResendFromEmail:    strings.TrimSpace(v.GetString("RESEND_FROM_EMAIL")),
		NotificationEmail:  strings.TrimSpace(v.GetString("NOTIFICATION_EMAIL")),
		RecaptchaSecretKey: strings.TrimSpace(v.GetString("RECAPTCHA_SECRET_KEY")),
		RecaptchaMinScore:  v.GetFloat64("RECAPTCHA_MIN_SCORE"),
		HTTPAddr:           strings.TrimSpace(v.GetString("HTTP_ADDR")),
		AllowedOrigins:     splitList(v.GetString("ALLOWED_ORIGINS")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v.GetString("LOG_LEVEL")))); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.MaxContextItems <= 0 {
		errs = append(errs, errors.New("config: MAX_CONTEXT_ITEMS must be positive"))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("config: MAX_MESSAGE_LENGTH must be positive"))
	}
	if c.GenerateTimeout <= 0 {
		errs = append(errs, errors.New("config: GENERATE_TIMEOUT must be a positive duration"))
	}
	if c.RecaptchaMinScore <= 0 || c.RecaptchaMinScore > 1 {
		errs = append(errs, errors.New("config: RECAPTCHA_MIN_SCORE must be in (0, 1]"))
	}
	return errors.Join(errs...)
}

// UsesParamStore reports whether secrets and the knowledge base may be read
// from SSM Parameter Store.
func (c Config) UsesParamStore() bool {
	return c.ParamPrefix != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
