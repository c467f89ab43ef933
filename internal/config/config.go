package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	TransportHTTP   = "http"
	TransportOpenAI = "openai"
)

type Config struct {
	AppPort      int           `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	LLMBaseURL   string        `mapstructure:"LLM_BASE_URL" validate:"required,url"`
	LLMModel     string        `mapstructure:"LLM_MODEL" validate:"required"`
	LLMAPIKey    string        `mapstructure:"LLM_API_KEY"`
	LLMTransport string        `mapstructure:"LLM_TRANSPORT" validate:"oneof=http openai"`
	LLMTimeout   time.Duration `mapstructure:"LLM_TIMEOUT" validate:"gt=0"`
	SchemaPath   string        `mapstructure:"SCHEMA_PATH"`
	DatabasePath string        `mapstructure:"DATABASE_PATH" validate:"required"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	LogFormat    string        `mapstructure:"LOG_FORMAT" validate:"oneof=json text"`
}

// LoadConfig reads the configuration and validates it.
func LoadConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads defaults, the optional .env file and the environment without
// validating, so callers can apply overrides first.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LLM_BASE_URL", "http://localhost:3000/v1")
	viper.SetDefault("LLM_MODEL", "gpt4all")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_TRANSPORT", TransportHTTP)
	viper.SetDefault("LLM_TIMEOUT", 60*time.Second)
	viper.SetDefault("SCHEMA_PATH", "")
	viper.SetDefault("DATABASE_PATH", "./data/chartgen.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

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
	cfg.LLMTransport = strings.ToLower(strings.TrimSpace(cfg.LLMTransport))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	return &cfg, nil
}

// Validate reports every setting that fails its constraint in one error,
// naming the variables as they are set in the environment.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config: %w", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s fails %q (got %v)", fe.Field(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("config: invalid settings: %s", strings.Join(problems, "; "))
}
