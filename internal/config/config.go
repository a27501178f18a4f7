package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	OpenAIAPIKey string `yaml:"openai_api_key"`
	Logger       LoggerConfig
	Usage        UsageConfig
	Rubric       []RubricCriterionConfig
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type UsageConfig struct {
	LogPath string `yaml:"log_path"`
}

// RubricCriterionConfig is one rubric entry as declared in config.yaml.
// Order in the file is the order criteria are rendered into the prompt.
type RubricCriterionConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

func LoadConfig() (*Config, error) {
	// Load .env before viper so OPENAI_API_KEY can come from either place.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("usage.log_path", "api_usage.log")

	// The config file is optional: the pipeline can run entirely from
	// environment variables plus the default rubric.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		OpenAIAPIKey: viper.GetString("openai_api_key"),
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Usage: UsageConfig{
			LogPath: viper.GetString("usage.log_path"),
		},
	}

	if err := viper.UnmarshalKey("rubric", &config.Rubric); err != nil {
		return nil, fmt.Errorf("failed to parse rubric config: %w", err)
	}

	// Override with environment variables if set
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.OpenAIAPIKey = openAIKey
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if usagePath := os.Getenv("USAGE_LOG_PATH"); usagePath != "" {
		config.Usage.LogPath = usagePath
	}

	return config, nil
}
