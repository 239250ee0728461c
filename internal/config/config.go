package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// ExerciseConfig represents exercise construction and grading settings
type ExerciseConfig struct {
	DefaultStrikes            int     `yaml:"default_strikes"`             // Rows when the request omits num_strikes
	SimpleMissingProbability  float64 `yaml:"simple_missing_probability"`  // Chance a price is blanked in simple mode
	SpreadsMissingProbability float64 `yaml:"spreads_missing_probability"` // Chance a price is hidden behind a spread
	Tolerance                 float64 `yaml:"tolerance"`                   // Absolute grading tolerance in dollars
}

type Config struct {
	// Server settings
	Port string

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Exercise settings
	Exercise ExerciseConfig `yaml:"exercise"`
}

// YAMLConfig mirrors the optional config.yaml file
type YAMLConfig struct {
	Port     string         `yaml:"port"`
	Logging  LoggingConfig  `yaml:"logging"`
	Exercise ExerciseConfig `yaml:"exercise"`
}

// Load builds the configuration from environment variables with an optional
// config.yaml overlay. A .env file is honored when present.
func Load() *Config {
	// Optional .env file; missing is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", ""),
		},
		Exercise: ExerciseConfig{
			DefaultStrikes:            getEnvInt("DEFAULT_STRIKES", 5),
			SimpleMissingProbability:  getEnvFloat("SIMPLE_MISSING_PROBABILITY", 0.4),
			SpreadsMissingProbability: getEnvFloat("SPREADS_MISSING_PROBABILITY", 0.3),
			Tolerance:                 getEnvFloat("GRADING_TOLERANCE", 0.05),
		},
	}

	// Try to load from YAML file on top of the environment defaults
	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
		if yamlCfg.Exercise.DefaultStrikes > 0 {
			cfg.Exercise.DefaultStrikes = yamlCfg.Exercise.DefaultStrikes
		}
		if yamlCfg.Exercise.SimpleMissingProbability > 0 {
			cfg.Exercise.SimpleMissingProbability = yamlCfg.Exercise.SimpleMissingProbability
		}
		if yamlCfg.Exercise.SpreadsMissingProbability > 0 {
			cfg.Exercise.SpreadsMissingProbability = yamlCfg.Exercise.SpreadsMissingProbability
		}
		if yamlCfg.Exercise.Tolerance > 0 {
			cfg.Exercise.Tolerance = yamlCfg.Exercise.Tolerance
		}
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		// Could not read config.yaml - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config.yaml - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
