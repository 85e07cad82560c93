package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr     string `yaml:"listen_addr"`
	DBPath         string `yaml:"db_path"`
	StorageBackend string `yaml:"storage_backend"`
	DataPath       string `yaml:"data_path"`
	SuggestBackend string `yaml:"suggest_backend"`
	ClaudeAPIKey   string `yaml:"claude_api_key"`
	ClaudeModel    string `yaml:"claude_model"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
}

// Load builds the configuration from defaults, an optional YAML file named
// by CONFIG_PATH, and finally environment variables, each layer overriding
// the previous one.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     ":8080",
		DBPath:         "/data/listcal.db",
		StorageBackend: "sqlite",
		DataPath:       "/data/slots",
		SuggestBackend: "off",
		ClaudeModel:    "claude-sonnet-4-5",
		LogLevel:       "info",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	applyEnv(&cfg.DBPath, "DB_PATH")
	applyEnv(&cfg.StorageBackend, "STORAGE_BACKEND")
	applyEnv(&cfg.DataPath, "DATA_PATH")
	applyEnv(&cfg.SuggestBackend, "SUGGEST_BACKEND")
	applyEnv(&cfg.ClaudeAPIKey, "CLAUDE_API_KEY")
	applyEnv(&cfg.ClaudeModel, "CLAUDE_MODEL")
	applyEnv(&cfg.LogLevel, "LOG_LEVEL")
	applyEnv(&cfg.LogFile, "LOG_FILE")

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(dst *string, key string) {
	if val, exists := os.LookupEnv(key); exists {
		*dst = val
	}
}
