package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains all server configuration. It is constructed once at
// startup and passed by reference; nothing reads the environment after
// Load returns.
type Config struct {
	Port           string   `env:"PORT" envDefault:"5000"`
	Env            string   `env:"ENV" envDefault:"development"`
	MongoURI       string   `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName   string   `env:"DATABASE_NAME" envDefault:"shop_db"`
	JWTSecret      string   `env:"JWT_SECRET" envDefault:"dev-secret"`
	UploadDir      string   `env:"UPLOAD_DIR" envDefault:"uploads"`
	AdminEmail     string   `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	LogLevel       int      `env:"LOG_LEVEL" envDefault:"0"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Production reports whether the server runs with production settings,
// which turns on the Secure flag of the session cookie.
func (c *Config) Production() bool {
	return c.Env == "production"
}
