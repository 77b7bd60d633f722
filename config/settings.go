package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DatabaseSettings struct {
	Driver string `yaml:"driver"`
	Name   string `yaml:"name"`
	DSN    string `yaml:"dsn"`
}

type Settings struct {
	Addr      string           `yaml:"addr"`
	Database  DatabaseSettings `yaml:"database"`
	JWTSecret string           `yaml:"jwt_secret"`
}

// Load reads settings from config.yaml (or $CONFIG_FILE) when present, then
// applies env overrides: ADDR, DB_DRIVER, DB_NAME, DB_DSN, JWT_SECRET.
func Load() Settings {
	s := Settings{
		Addr: ":8000",
		Database: DatabaseSettings{
			Driver: "mysql",
			Name:   "tramitesdbgo",
		},
		JWTSecret: "supersecretkey",
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &s); err != nil {
			panic(fmt.Sprintf("invalid config file %s: %v", path, err))
		}
	}

	if v := os.Getenv("ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		s.Database.Driver = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		s.Database.Name = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		s.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		s.JWTSecret = v
	}

	if s.Database.DSN == "" {
		s.Database.DSN = defaultDSN(s.Database)
	}

	return s
}

func defaultDSN(db DatabaseSettings) string {
	switch db.Driver {
	case "sqlite":
		return "file:" + db.Name + ".db?cache=shared"
	default:
		return fmt.Sprintf("admin:12345678@tcp(127.0.0.1:3306)/%s?charset=utf8mb4&parseTime=True&loc=Local", db.Name)
	}
}
