package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type BackofficeConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	BackofficeDB `yaml:"backoffice_db"`
	Seller       SellerConfig `yaml:"seller"`
	KafkaService `yaml:"kafka-service"`
	Migrations   `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"3000"`
}

type BackofficeDB struct {
	Dsn string `yaml:"dsn"`
}

// SellerConfig carries both the singleton seller row seeded at
// bootstrap and the shared credential the seller logs in with.
type SellerConfig struct {
	Name         string `yaml:"name"`
	GameNickname string `yaml:"game_nickname"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"backoffice-order-events"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *BackofficeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BACKOFFICE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BACKOFFICE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BackofficeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
