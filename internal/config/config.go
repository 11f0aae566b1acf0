package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBPath        string `envconfig:"DB_PATH" default:"inventario_ti.db"`
	ServerPort    string `envconfig:"SERVER_PORT" default:"8080"`
	SessionSecret string `envconfig:"SESSION_SECRET"`
	TemplateGlob  string `envconfig:"TEMPLATE_GLOB" default:"web/templates/*.html"`
	StaticDir     string `envconfig:"STATIC_DIR" default:"web/static"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE"`
}

// Load lê o .env (se existir) e monta a configuração a partir do ambiente.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("assetflow", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.SessionSecret == "" {
		log.Fatal("ASSETFLOW_SESSION_SECRET is not set")
	}

	return &cfg
}
