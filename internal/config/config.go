package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. Values come from the environment, with
// an optional .env file for local development.
type Config struct {
	AppPort                int    `mapstructure:"APP_PORT"`
	OpenAIAPIKey           string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL          string `mapstructure:"OPENAI_BASE_URL"`
	DefaultModel           string `mapstructure:"DEFAULT_MODEL"`
	ClassifierModel        string `mapstructure:"CLASSIFIER_MODEL"`
	JWTSecret              string `mapstructure:"JWT_SECRET"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	CORSOrigins            string `mapstructure:"CORS_ORIGINS"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// ConfigFileUsed is the path of the .env file that supplied values, or
	// empty when everything came from the environment and defaults.
	ConfigFileUsed string `mapstructure:"-"`
}

// AllowedOrigins splits the comma-separated CORS_ORIGINS value.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 4000)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("DEFAULT_MODEL", "gpt-4o")
	viper.SetDefault("CLASSIFIER_MODEL", "gpt-4o-mini")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 120)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFileUsed = viper.ConfigFileUsed()

	return &cfg, nil
}
