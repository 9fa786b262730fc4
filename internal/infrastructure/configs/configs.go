package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerHost            string `mapstructure:"SERVER_HOST"`
	ServerPort            int    `mapstructure:"SERVER_PORT" validate:"required,gte=1,lte=65535"`
	OpenAIAPIKey          string `mapstructure:"OPENAI_API_KEY" validate:"required_if=CredentialPolicy server_key"`
	OpenAIImagesURL       string `mapstructure:"OPENAI_IMAGES_URL" validate:"required,url"`
	OpenAIImageModel      string `mapstructure:"OPENAI_IMAGE_MODEL" validate:"required"`
	CredentialPolicy      string `mapstructure:"CREDENTIAL_POLICY" validate:"oneof=header_override server_key"`
	MaxAllowedSize        int    `mapstructure:"JSON_BODY_MAX_SIZE" validate:"required,gt=0"`
	LogLevel              string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile               string `mapstructure:"LOGGING_FILE"`
	ServerShutdownTimeout int    `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"gte=0"`
	GinMode               string `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
}

var defaults = map[string]any{
	"SERVER_HOST":             "",
	"SERVER_PORT":             3000,
	"OPENAI_API_KEY":          "",
	"OPENAI_IMAGES_URL":       "https://api.openai.com/v1/images/edits",
	"OPENAI_IMAGE_MODEL":      domain.DefaultImageModel,
	"CREDENTIAL_POLICY":       string(domain.CredentialHeaderOverride),
	"JSON_BODY_MAX_SIZE":      1 << 20,
	"LOG_LEVEL":               "info",
	"LOGGING_FILE":            "",
	"SERVER_SHUTDOWN_TIMEOUT": 10,
	"GIN_MODE":                "release",
}

// LoadConfigs reads the process environment, after merging in the optional
// dotenv file at envPath. Variables already set in the environment win over
// the file. A missing file is not an error.
func LoadConfigs(envPath string) (*Config, error) {

	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// PORT is what most hosting platforms inject.
	if err := v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}
	v.AutomaticEnv()

	var Cfg Config

	err := v.Unmarshal(&Cfg)
	if err != nil {
		return nil, err
	}

	policy, err := domain.ParseCredentialPolicy(Cfg.CredentialPolicy)
	if err != nil {
		return nil, err
	}
	Cfg.CredentialPolicy = string(policy)
	Cfg.LogLevel = strings.ToLower(strings.TrimSpace(Cfg.LogLevel))

	validate := validator.New()

	err = validate.Struct(Cfg)
	if err != nil {
		return nil, err
	}

	return &Cfg, nil

}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ServerShutdownTimeout) * time.Second
}

func (c *Config) Policy() domain.CredentialPolicy {
	return domain.CredentialPolicy(c.CredentialPolicy)
}
