package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" | "postgres"
	Path    string `yaml:"path"`    // file backend
	DSN     string `yaml:"dsn"`     // postgres backend
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Email   struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Reports  struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"reports"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "./data/chronos_state.json"
	}
	if cfg.Reports.OutputDir == "" {
		cfg.Reports.OutputDir = "./files"
	}
	return &cfg
}
